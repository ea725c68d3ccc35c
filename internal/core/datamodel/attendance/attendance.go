package attendance

import "time"

type Attendance struct {
	ID         int64     `gorm:"primaryKey"`
	EmployeeID string    `gorm:"column:employee_id;not null;uniqueIndex:uq_employee_date,priority:1;index"`
	Date       time.Time `gorm:"column:date;type:date;not null;uniqueIndex:uq_employee_date,priority:2"`
	Status     string    `gorm:"column:status;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Attendance) TableName() string {
	return "attendance"
}
