package entity

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type UserStatus string

const (
	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

type User struct {
	Base         `bson:",inline"`
	Name         string     `bson:"name" json:"name"`
	Email        string     `bson:"email" json:"email"`
	Password     string     `bson:"password" json:"-"`
	Role         UserRole   `bson:"role" json:"role"`
	Preferences  []string   `bson:"preferences" json:"preferences"`
	RewardPoints int        `bson:"reward_points" json:"rewardPoints"`
	Status       UserStatus `bson:"status" json:"status"`
}
