package entity

type TouristPlace struct {
	Base `bson:",inline"`
	Name string `bson:"name" json:"name"`
}
