package model

// MemberTypeModel mirrors the 'member_types' table. The primary key is the tier name.
type MemberTypeModel struct {
	ID                 string         `gorm:"type:varchar(32);primary_key"`
	Discount           float64        `gorm:"type:double precision;not null"`
	PostsLimitPerMonth int            `gorm:"not null"`
	Profiles           []ProfileModel `gorm:"foreignKey:MemberTypeID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (MemberTypeModel) TableName() string {
	return "member_types"
}
