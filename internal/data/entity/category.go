package entity

type Category struct {
	Base  `bson:",inline"`
	Title string `bson:"title" json:"title"`
	Image string `bson:"image" json:"image"`
}
