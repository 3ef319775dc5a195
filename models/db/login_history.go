package dbmodels

type LoginHistory struct {
	BaseModel
	UserID    *string `gorm:"type:varchar(36);index"`
	Email     string  `gorm:"type:varchar(255)"`
	IP        string  `gorm:"type:varchar(50)"`
	UserAgent string  `gorm:"type:varchar(512)"`
	Success   bool
}
