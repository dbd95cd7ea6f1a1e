package entity

type State struct {
	Base `bson:",inline"`
	Name string `bson:"name" json:"name"`
	Code string `bson:"code" json:"code"`
}
