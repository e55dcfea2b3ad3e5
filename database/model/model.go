package model

import "time"

// Role is the access tier of an account.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// OrderStatus is the processing state of an order.
type OrderStatus string

const (
	StatusNew        OrderStatus = "New"
	StatusInProgress OrderStatus = "In Progress"
	StatusReady      OrderStatus = "Ready"
)

// Statuses lists the statuses the dashboard offers, in rank order.
var Statuses = []OrderStatus{StatusNew, StatusInProgress, StatusReady}

// Valid reports whether s is one of the statuses the panel offers.
func (s OrderStatus) Valid() bool {
	return s == StatusNew || s == StatusInProgress || s == StatusReady
}

// Rank returns the dashboard sort rank of s. Unknown values sort last.
func (s OrderStatus) Rank() int {
	switch s {
	case StatusNew:
		return 1
	case StatusInProgress:
		return 2
	case StatusReady:
		return 3
	default:
		return 4
	}
}

// Account is a staff login. Each account owns a globally unique request
// token that routes public submissions to it.
type Account struct {
	Id           int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"column:password_hash;not null"`
	Role         Role   `json:"role" gorm:"not null"`
	RequestToken string `json:"requestToken" gorm:"uniqueIndex;not null"`

	FirstName string `json:"firstName" form:"firstName"`
	LastName  string `json:"lastName" form:"lastName"`
	Email     string `json:"email" form:"email"`
	Phone     string `json:"phone" form:"phone"`
	WorkType  string `json:"workType" form:"workType"`
	Gender    string `json:"gender" form:"gender"`
	Age       int    `json:"age" form:"age"`
}

// Order is a customer submission. Only Status ever changes after
// creation; every other field is write-once.
type Order struct {
	Id        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"createdAt"`

	ProductType  string `json:"productType" form:"productType"`
	CustomerName string `json:"customerName" form:"customerName"`
	PhoneNumber  string `json:"phoneNumber" form:"phoneNumber"`
	Location     string `json:"location" form:"location"`
	Details      string `json:"details" form:"details"`

	// FileName is the sanitized stored name of the attachment, or ""
	// when the order was submitted without one.
	FileName string `json:"fileName"`

	// AgentUsername is the owner of the request token the order arrived
	// through; "" for unrouted submissions.
	AgentUsername string      `json:"agentUsername" gorm:"index"`
	Status        OrderStatus `json:"status" gorm:"not null;default:New"`
}
