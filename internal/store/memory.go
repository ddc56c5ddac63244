package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"reloop-backend-go/internal/models"
)

// MemStore keeps every collection in process memory. One mutex guards
// all four maps: chi serves requests on concurrent goroutines and each
// operation must observe a consistent snapshot. State is lost on
// restart; PGStore offers the durable alternative behind the same
// interface.
type MemStore struct {
	mu sync.Mutex

	users      map[int]*models.User
	items      map[int]*models.Item
	messages   map[int]*models.Message
	repairTips map[int]*models.RepairTip

	// itemOrder preserves insertion order so unfiltered listings come
	// back in relative storage order instead of map iteration order.
	itemOrder []int

	nextUserID      int
	nextItemID      int
	nextMessageID   int
	nextRepairTipID int
}

func NewMemStore() *MemStore {
	return &MemStore{
		users:           map[int]*models.User{},
		items:           map[int]*models.Item{},
		messages:        map[int]*models.Message{},
		repairTips:      map[int]*models.RepairTip{},
		nextUserID:      1,
		nextItemID:      1,
		nextMessageID:   1,
		nextRepairTipID: 1,
	}
}

func (s *MemStore) GetUser(id int) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (s *MemStore) GetUserByUsername(username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *MemStore) CreateUser(input NewUser) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := &models.User{
		ID:       s.nextUserID,
		Username: input.Username,
		Password: input.Password,
	}
	s.nextUserID++
	s.users[user.ID] = user
	copied := *user
	return &copied, nil
}

func (s *MemStore) UpdateUser(id int, patch UserPatch) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	if patch.IsRepairHero != nil {
		user.IsRepairHero = *patch.IsRepairHero
	}
	if patch.CO2Saved != nil {
		user.CO2Saved = *patch.CO2Saved
	}
	if patch.ItemsListed != nil {
		user.ItemsListed = *patch.ItemsListed
	}
	copied := *user
	return &copied, nil
}

func (s *MemStore) GetItem(id int) (*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	copied := *item
	return &copied, nil
}

func (s *MemStore) GetItems(filters *ItemFilters) ([]models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]models.Item, 0, len(s.itemOrder))
	for _, id := range s.itemOrder {
		item := s.items[id]
		if filters != nil && !matchesFilters(item, filters) {
			continue
		}
		result = append(result, *item)
	}
	return result, nil
}

func matchesFilters(item *models.Item, filters *ItemFilters) bool {
	if len(filters.Category) > 0 && !containsCategory(filters.Category, item.Category) {
		return false
	}
	if len(filters.Condition) > 0 && !containsCondition(filters.Condition, item.Condition) {
		return false
	}
	if filters.PriceMin != nil && item.Price < *filters.PriceMin {
		return false
	}
	if filters.PriceMax != nil && item.Price > *filters.PriceMax {
		return false
	}
	if filters.Distance != nil && item.Distance > *filters.Distance {
		return false
	}
	if filters.Search != "" {
		needle := strings.ToLower(filters.Search)
		if !strings.Contains(strings.ToLower(item.Title), needle) &&
			!strings.Contains(strings.ToLower(item.Description), needle) {
			return false
		}
	}
	return true
}

func containsCategory(set []models.Category, value models.Category) bool {
	for _, c := range set {
		if c == value {
			return true
		}
	}
	return false
}

func containsCondition(set []models.Condition, value models.Condition) bool {
	for _, c := range set {
		if c == value {
			return true
		}
	}
	return false
}

func (s *MemStore) CreateItem(input NewItem) (*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := &models.Item{
		ID:          s.nextItemID,
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		UserID:      input.UserID,
		Category:    input.Category,
		Condition:   input.Condition,
		ImageURL:    input.ImageURL,
		Weight:      input.Weight,
		CO2Saved:    models.CO2Saved(input.Category, input.Weight),
		Location:    input.Location,
		Distance:    input.Distance,
		Created:     time.Now().UTC(),
	}
	s.nextItemID++
	s.items[item.ID] = item
	s.itemOrder = append(s.itemOrder, item.ID)

	// Listing credits the owner. Deletion never takes the credit back.
	if owner, ok := s.users[item.UserID]; ok {
		owner.ItemsListed++
		owner.CO2Saved += item.CO2Saved
	}

	copied := *item
	return &copied, nil
}

func (s *MemStore) UpdateItem(id int, patch ItemPatch) (*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	if patch.Title != nil {
		item.Title = *patch.Title
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}
	if patch.UserID != nil {
		item.UserID = *patch.UserID
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Condition != nil {
		item.Condition = *patch.Condition
	}
	if patch.ImageURL != nil {
		item.ImageURL = *patch.ImageURL
	}
	if patch.Weight != nil {
		item.Weight = *patch.Weight
	}
	if patch.CO2Saved != nil {
		item.CO2Saved = *patch.CO2Saved
	}
	if patch.Location != nil {
		item.Location = *patch.Location
	}
	if patch.Distance != nil {
		item.Distance = *patch.Distance
	}
	copied := *item
	return &copied, nil
}

func (s *MemStore) DeleteItem(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	for i, orderedID := range s.itemOrder {
		if orderedID == id {
			s.itemOrder = append(s.itemOrder[:i], s.itemOrder[i+1:]...)
			break
		}
	}
	return true, nil
}

func (s *MemStore) GetMessage(id int) (*models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	message, ok := s.messages[id]
	if !ok {
		return nil, nil
	}
	copied := *message
	return &copied, nil
}

func (s *MemStore) GetMessagesForUser(userID int) ([]models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := []models.Message{}
	for _, message := range s.messages {
		if message.SenderID == userID || message.ReceiverID == userID {
			result = append(result, *message)
		}
	}
	return result, nil
}

func (s *MemStore) GetConversation(user1ID, user2ID, itemID int) ([]models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := []models.Message{}
	for _, message := range s.messages {
		betweenPair := (message.SenderID == user1ID && message.ReceiverID == user2ID) ||
			(message.SenderID == user2ID && message.ReceiverID == user1ID)
		if betweenPair && message.ItemID == itemID {
			result = append(result, *message)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Created.Equal(result[j].Created) {
			return result[i].ID < result[j].ID
		}
		return result[i].Created.Before(result[j].Created)
	})
	return result, nil
}

func (s *MemStore) CreateMessage(input NewMessage) (*models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	message := &models.Message{
		ID:         s.nextMessageID,
		SenderID:   input.SenderID,
		ReceiverID: input.ReceiverID,
		ItemID:     input.ItemID,
		Content:    input.Content,
		Read:       false,
		Created:    time.Now().UTC(),
	}
	s.nextMessageID++
	s.messages[message.ID] = message
	copied := *message
	return &copied, nil
}

func (s *MemStore) MarkMessageRead(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	message, ok := s.messages[id]
	if !ok {
		return false, nil
	}
	message.Read = true
	return true, nil
}

func (s *MemStore) GetRepairTip(id int) (*models.RepairTip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tip, ok := s.repairTips[id]
	if !ok {
		return nil, nil
	}
	copied := *tip
	return &copied, nil
}

func (s *MemStore) GetRepairTips(category models.Category) ([]models.RepairTip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int, 0, len(s.repairTips))
	for id, tip := range s.repairTips {
		if category != "" && tip.Category != category {
			continue
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)
	result := make([]models.RepairTip, 0, len(ids))
	for _, id := range ids {
		result = append(result, *s.repairTips[id])
	}
	return result, nil
}

func (s *MemStore) CreateRepairTip(input NewRepairTip) (*models.RepairTip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tip := &models.RepairTip{
		ID:         s.nextRepairTipID,
		Title:      input.Title,
		Content:    input.Content,
		Category:   input.Category,
		Difficulty: input.Difficulty,
		UserID:     input.UserID,
		Views:      0,
		ImageURL:   input.ImageURL,
		Created:    time.Now().UTC(),
	}
	s.nextRepairTipID++
	s.repairTips[tip.ID] = tip
	copied := *tip
	return &copied, nil
}

func (s *MemStore) IncrementRepairTipViews(id int) (*models.RepairTip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tip, ok := s.repairTips[id]
	if !ok {
		return nil, nil
	}
	tip.Views++
	copied := *tip
	return &copied, nil
}

func (s *MemStore) TotalCO2Saved() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, user := range s.users {
		total += user.CO2Saved
	}
	return total, nil
}

func (s *MemStore) TotalActiveListings() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items), nil
}

func (s *MemStore) TotalRepairHeroes() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, user := range s.users {
		if user.IsRepairHero {
			count++
		}
	}
	return count, nil
}

func (s *MemStore) Close() error {
	return nil
}
