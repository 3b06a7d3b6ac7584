package db_models

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Phone        string
	CompanyName  string
	Role         string `gorm:"default:user"`

	Subscriptions []Subscription `gorm:"foreignKey:AccountID"`
}
