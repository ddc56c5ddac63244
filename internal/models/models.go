package models

import "time"

// Category is the closed set of listing categories. Repair tips reuse it.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryFurniture   Category = "Furniture"
	CategoryClothing    Category = "Clothing"
	CategoryKitchen     Category = "Kitchen"
	CategoryTools       Category = "Tools"
	CategorySports      Category = "Sports"
	CategoryToys        Category = "Toys"
	CategoryBooks       Category = "Books"
	CategoryAutomotive  Category = "Automotive"
	CategoryOther       Category = "Other"
)

var Categories = []Category{
	CategoryElectronics,
	CategoryFurniture,
	CategoryClothing,
	CategoryKitchen,
	CategoryTools,
	CategorySports,
	CategoryToys,
	CategoryBooks,
	CategoryAutomotive,
	CategoryOther,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Condition describes the usability state of a listed item.
type Condition string

const (
	ConditionReadyToUse Condition = "Ready-to-Use"
	ConditionRepairable Condition = "Repairable"
	ConditionPartsOnly  Condition = "Parts Only"
)

var Conditions = []Condition{
	ConditionReadyToUse,
	ConditionRepairable,
	ConditionPartsOnly,
}

func (c Condition) Valid() bool {
	for _, known := range Conditions {
		if c == known {
			return true
		}
	}
	return false
}

type User struct {
	ID           int    `db:"id" json:"id"`
	Username     string `db:"username" json:"username"`
	Password     string `db:"password" json:"password,omitempty"`
	IsRepairHero bool   `db:"is_repair_hero" json:"isRepairHero"`
	CO2Saved     int    `db:"co2_saved" json:"co2Saved"`
	ItemsListed  int    `db:"items_listed" json:"itemsListed"`
}

type Item struct {
	ID          int       `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Price       int       `db:"price" json:"price"`
	UserID      int       `db:"user_id" json:"userId"`
	Category    Category  `db:"category" json:"category"`
	Condition   Condition `db:"condition" json:"condition"`
	ImageURL    string    `db:"image_url" json:"imageUrl"`
	Weight      int       `db:"weight" json:"weight"`
	CO2Saved    int       `db:"co2_saved" json:"co2Saved"`
	Location    string    `db:"location" json:"location"`
	Distance    float64   `db:"distance" json:"distance"`
	Created     time.Time `db:"created" json:"created"`
}

type Message struct {
	ID         int       `db:"id" json:"id"`
	SenderID   int       `db:"sender_id" json:"senderId"`
	ReceiverID int       `db:"receiver_id" json:"receiverId"`
	ItemID     int       `db:"item_id" json:"itemId"`
	Content    string    `db:"content" json:"content"`
	Read       bool      `db:"read" json:"read"`
	Created    time.Time `db:"created" json:"created"`
}

type RepairTip struct {
	ID         int       `db:"id" json:"id"`
	Title      string    `db:"title" json:"title"`
	Content    string    `db:"content" json:"content"`
	Category   Category  `db:"category" json:"category"`
	Difficulty int       `db:"difficulty" json:"difficulty"`
	UserID     int       `db:"user_id" json:"userId"`
	Views      int       `db:"views" json:"views"`
	ImageURL   string    `db:"image_url" json:"imageUrl"`
	Created    time.Time `db:"created" json:"created"`
}
