package models

const (
	BookingActive    = "booked"
	BookingCancelled = "cancelled"
)

// TransportRoute is faculty-owned (OwnerID = faculty id).
type TransportRoute struct {
	Scoped
	RouteName  string  `json:"route_name" gorm:"size:120;not null"`
	StartPoint string  `json:"start_point" gorm:"size:120"`
	EndPoint   string  `json:"end_point" gorm:"size:120"`
	DepartTime string  `json:"depart_time" gorm:"size:5"` // HH:MM
	Fare       float64 `json:"fare"`
	Capacity   int     `json:"capacity"`
	DriverName string  `json:"driver_name" gorm:"size:120"`
	VehicleNo  string  `json:"vehicle_no" gorm:"size:20"`
}

// TransportBooking is student-owned (OwnerID = student id).
type TransportBooking struct {
	Scoped
	RouteID string `json:"route_id" gorm:"size:36;index;not null"`
	Date    string `json:"date" gorm:"size:10"` // YYYY-MM-DD
	Status  string `json:"status" gorm:"size:10;not null"`
}
