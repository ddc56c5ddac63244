package store

import "reloop-backend-go/internal/models"

// ItemFilters narrows GetItems. Dimensions combine with AND; the
// multi-valued dimensions (Category, Condition) match with OR within
// the provided set. Nil/empty fields are ignored.
type ItemFilters struct {
	Category  []models.Category
	Condition []models.Condition
	PriceMin  *int
	PriceMax  *int
	Distance  *float64
	Search    string
}

// NewUser carries the fields a client may supply when registering.
// Password must already be hashed by the caller.
type NewUser struct {
	Username string
	Password string
}

// UserPatch updates a user in place. Nil fields are left untouched.
type UserPatch struct {
	IsRepairHero *bool
	CO2Saved     *int
	ItemsListed  *int
}

// NewItem carries the client-supplied fields of a listing. CO2 savings
// are derived server-side and never accepted from input.
type NewItem struct {
	Title       string
	Description string
	Price       int
	UserID      int
	Category    models.Category
	Condition   models.Condition
	ImageURL    string
	Weight      int
	Location    string
	Distance    float64
}

// ItemPatch shallow-merges onto a stored item. CO2Saved is
// deliberately overwritable and deliberately never re-derived when
// Category or Weight change; creation is the only derivation point.
type ItemPatch struct {
	Title       *string
	Description *string
	Price       *int
	UserID      *int
	Category    *models.Category
	Condition   *models.Condition
	ImageURL    *string
	Weight      *int
	CO2Saved    *int
	Location    *string
	Distance    *float64
}

type NewMessage struct {
	SenderID   int
	ReceiverID int
	ItemID     int
	Content    string
}

type NewRepairTip struct {
	Title      string
	Content    string
	Category   models.Category
	Difficulty int
	UserID     int
	ImageURL   string
}

// Storage is the repository boundary. Reads return (nil, nil) for
// absent ids; errors are reserved for the backing store failing.
type Storage interface {
	GetUser(id int) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	CreateUser(input NewUser) (*models.User, error)
	UpdateUser(id int, patch UserPatch) (*models.User, error)

	GetItem(id int) (*models.Item, error)
	// GetItems guarantees no ordering beyond relative storage order
	// when no filters are given; presentation sorts.
	GetItems(filters *ItemFilters) ([]models.Item, error)
	CreateItem(input NewItem) (*models.Item, error)
	UpdateItem(id int, patch ItemPatch) (*models.Item, error)
	DeleteItem(id int) (bool, error)

	GetMessage(id int) (*models.Message, error)
	GetMessagesForUser(userID int) ([]models.Message, error)
	// GetConversation is the one sorted retrieval path: messages
	// between exactly this pair scoped to this item, created ascending.
	GetConversation(user1ID, user2ID, itemID int) ([]models.Message, error)
	CreateMessage(input NewMessage) (*models.Message, error)
	MarkMessageRead(id int) (bool, error)

	GetRepairTip(id int) (*models.RepairTip, error)
	// GetRepairTips with the zero Category returns all tips.
	GetRepairTips(category models.Category) ([]models.RepairTip, error)
	CreateRepairTip(input NewRepairTip) (*models.RepairTip, error)
	IncrementRepairTipViews(id int) (*models.RepairTip, error)

	TotalCO2Saved() (int, error)
	TotalActiveListings() (int, error)
	TotalRepairHeroes() (int, error)

	Close() error
}
