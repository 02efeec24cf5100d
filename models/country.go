package models

type Country struct {
	ID         uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name       string `json:"name" gorm:"column:Name;type:varchar(255);not null;unique"`
	Continent  string `json:"continent" gorm:"column:Continent;type:varchar(255)"`
	Population int64  `json:"population" gorm:"column:Population"`
}

func (Country) TableName() string {
	return "countries"
}
