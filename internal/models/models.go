package models

const (
	RoleUser  = 0
	RoleAdmin = 1
)

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"not null"                 json:"name"`
	Email        string `gorm:"unique;not null"          json:"email"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Role         int    `gorm:"not null;default:0"       json:"role"`
}

type Category struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"unique;not null"          json:"name"`
	Slug string `gorm:"uniqueIndex;not null"     json:"slug"`
}

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null"                 json:"name"`
	Slug        string  `gorm:"uniqueIndex;not null"     json:"slug"`
	Description string  `gorm:"not null"                 json:"description"`
	Price       float64 `gorm:"not null"                 json:"price"`
	Quantity    uint    `json:"quantity"`
	CategoryID  uint    `gorm:"index"                    json:"category_id"`
}

const (
	OrderNotProcessed = "not_processed"
	OrderProcessing   = "processing"
	OrderShipped      = "shipped"
	OrderDelivered    = "delivered"
	OrderCancelled    = "cancelled"
)

type Order struct {
	ID        uint        `gorm:"primaryKey;autoIncrement"       json:"id"`
	Reference string      `gorm:"uniqueIndex;not null"           json:"reference"`
	BuyerID   uint        `gorm:"index;not null"                 json:"buyer_id"`
	Status    string      `gorm:"not null;default:not_processed" json:"status"`
	Items     []OrderItem `gorm:"constraint:OnDelete:CASCADE"    json:"items"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey"                 json:"id"`
	OrderID   uint    `gorm:"index;not null"             json:"order_id"`
	ProductID uint    `gorm:"not null"                   json:"product_id"`
	Quantity  uint    `gorm:"default:1;check:quantity>0" json:"quantity"`
	Price     float64 `gorm:"not null"                   json:"price"`
}
