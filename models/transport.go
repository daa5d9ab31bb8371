package models

type Driver struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"not null"`
	Phone     string `json:"phone"`
	LicenseNo string `json:"license_no"`
}

type Transport struct {
	ID              uint    `json:"id" gorm:"primaryKey"`
	VehicleType     string  `json:"vehicle_type" gorm:"not null"`
	Capacity        float64 `json:"capacity"`
	CurrentCapacity float64 `json:"current_capacity"`
	DriverID        *uint   `json:"driver_id,omitempty"`
	Driver          *Driver `json:"driver,omitempty"`
}

type Warehouse struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"not null"`
	Location string `json:"location"`
}
