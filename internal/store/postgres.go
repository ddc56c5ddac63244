package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"reloop-backend-go/internal/models"
)

// PGStore implements Storage on Postgres for deployments that want the
// marketplace to survive a restart. The contract stays identical to
// MemStore; only durability changes.
type PGStore struct {
	db *sqlx.DB
}

func NewPGStore(db *sqlx.DB) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) GetUser(id int) (*models.User, error) {
	var user models.User
	err := s.db.Get(&user, `SELECT * FROM users WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *PGStore) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := s.db.Get(&user, `SELECT * FROM users WHERE username = $1`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *PGStore) CreateUser(input NewUser) (*models.User, error) {
	var user models.User
	err := s.db.Get(&user, `
INSERT INTO users (username, password)
VALUES ($1, $2)
RETURNING *
`, input.Username, input.Password)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *PGStore) UpdateUser(id int, patch UserPatch) (*models.User, error) {
	var user models.User
	err := s.db.Get(&user, `
UPDATE users
SET is_repair_hero = COALESCE($2, is_repair_hero),
    co2_saved = COALESCE($3, co2_saved),
    items_listed = COALESCE($4, items_listed)
WHERE id = $1
RETURNING *
`, id, patch.IsRepairHero, patch.CO2Saved, patch.ItemsListed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *PGStore) GetItem(id int) (*models.Item, error) {
	var item models.Item
	err := s.db.Get(&item, `SELECT * FROM items WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *PGStore) GetItems(filters *ItemFilters) ([]models.Item, error) {
	query := `SELECT * FROM items`
	clauses := []string{}
	args := []interface{}{}
	next := func() string { return "$" + strconv.Itoa(len(args)) }

	if filters != nil {
		if len(filters.Category) > 0 {
			placeholders := make([]string, 0, len(filters.Category))
			for _, c := range filters.Category {
				args = append(args, c)
				placeholders = append(placeholders, next())
			}
			clauses = append(clauses, "category IN ("+strings.Join(placeholders, ",")+")")
		}
		if len(filters.Condition) > 0 {
			placeholders := make([]string, 0, len(filters.Condition))
			for _, c := range filters.Condition {
				args = append(args, c)
				placeholders = append(placeholders, next())
			}
			clauses = append(clauses, "condition IN ("+strings.Join(placeholders, ",")+")")
		}
		if filters.PriceMin != nil {
			args = append(args, *filters.PriceMin)
			clauses = append(clauses, "price >= "+next())
		}
		if filters.PriceMax != nil {
			args = append(args, *filters.PriceMax)
			clauses = append(clauses, "price <= "+next())
		}
		if filters.Distance != nil {
			args = append(args, *filters.Distance)
			clauses = append(clauses, "distance <= "+next())
		}
		if filters.Search != "" {
			args = append(args, "%"+strings.ToLower(filters.Search)+"%")
			placeholder := next()
			clauses = append(clauses, "(lower(title) LIKE "+placeholder+" OR lower(description) LIKE "+placeholder+")")
		}
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY id"

	items := []models.Item{}
	if err := s.db.Select(&items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *PGStore) CreateItem(input NewItem) (*models.Item, error) {
	co2Saved := models.CO2Saved(input.Category, input.Weight)
	var item models.Item
	err := s.db.Get(&item, `
INSERT INTO items (title, description, price, user_id, category, condition, image_url, weight, co2_saved, location, distance, created)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
RETURNING *
`, input.Title, input.Description, input.Price, input.UserID, input.Category, input.Condition,
		input.ImageURL, input.Weight, co2Saved, input.Location, input.Distance, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	// Credit the owner; a missing owner row simply matches no rows.
	_, err = s.db.Exec(`
UPDATE users SET items_listed = items_listed + 1, co2_saved = co2_saved + $2 WHERE id = $1
`, item.UserID, item.CO2Saved)
	if err != nil {
		return nil, fmt.Errorf("credit owner: %w", err)
	}
	return &item, nil
}

func (s *PGStore) UpdateItem(id int, patch ItemPatch) (*models.Item, error) {
	var item models.Item
	err := s.db.Get(&item, `
UPDATE items
SET title = COALESCE($2, title),
    description = COALESCE($3, description),
    price = COALESCE($4, price),
    user_id = COALESCE($5, user_id),
    category = COALESCE($6, category),
    condition = COALESCE($7, condition),
    image_url = COALESCE($8, image_url),
    weight = COALESCE($9, weight),
    co2_saved = COALESCE($10, co2_saved),
    location = COALESCE($11, location),
    distance = COALESCE($12, distance)
WHERE id = $1
RETURNING *
`, id, patch.Title, patch.Description, patch.Price, patch.UserID, patch.Category, patch.Condition,
		patch.ImageURL, patch.Weight, patch.CO2Saved, patch.Location, patch.Distance)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *PGStore) DeleteItem(id int) (bool, error) {
	result, err := s.db.Exec(`DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *PGStore) GetMessage(id int) (*models.Message, error) {
	var message models.Message
	err := s.db.Get(&message, `SELECT * FROM messages WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (s *PGStore) GetMessagesForUser(userID int) ([]models.Message, error) {
	messages := []models.Message{}
	err := s.db.Select(&messages, `
SELECT * FROM messages WHERE sender_id = $1 OR receiver_id = $1
`, userID)
	return messages, err
}

func (s *PGStore) GetConversation(user1ID, user2ID, itemID int) ([]models.Message, error) {
	messages := []models.Message{}
	err := s.db.Select(&messages, `
SELECT * FROM messages
WHERE item_id = $3
  AND ((sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1))
ORDER BY created, id
`, user1ID, user2ID, itemID)
	return messages, err
}

func (s *PGStore) CreateMessage(input NewMessage) (*models.Message, error) {
	var message models.Message
	err := s.db.Get(&message, `
INSERT INTO messages (sender_id, receiver_id, item_id, content, read, created)
VALUES ($1,$2,$3,$4,false,$5)
RETURNING *
`, input.SenderID, input.ReceiverID, input.ItemID, input.Content, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (s *PGStore) MarkMessageRead(id int) (bool, error) {
	result, err := s.db.Exec(`UPDATE messages SET read = true WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *PGStore) GetRepairTip(id int) (*models.RepairTip, error) {
	var tip models.RepairTip
	err := s.db.Get(&tip, `SELECT * FROM repair_tips WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tip, nil
}

func (s *PGStore) GetRepairTips(category models.Category) ([]models.RepairTip, error) {
	tips := []models.RepairTip{}
	if category == "" {
		err := s.db.Select(&tips, `SELECT * FROM repair_tips ORDER BY id`)
		return tips, err
	}
	err := s.db.Select(&tips, `SELECT * FROM repair_tips WHERE category = $1 ORDER BY id`, category)
	return tips, err
}

func (s *PGStore) CreateRepairTip(input NewRepairTip) (*models.RepairTip, error) {
	var tip models.RepairTip
	err := s.db.Get(&tip, `
INSERT INTO repair_tips (title, content, category, difficulty, user_id, views, image_url, created)
VALUES ($1,$2,$3,$4,$5,0,$6,$7)
RETURNING *
`, input.Title, input.Content, input.Category, input.Difficulty, input.UserID, input.ImageURL, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return &tip, nil
}

func (s *PGStore) IncrementRepairTipViews(id int) (*models.RepairTip, error) {
	var tip models.RepairTip
	err := s.db.Get(&tip, `
UPDATE repair_tips SET views = views + 1 WHERE id = $1 RETURNING *
`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tip, nil
}

func (s *PGStore) TotalCO2Saved() (int, error) {
	var total int
	err := s.db.Get(&total, `SELECT COALESCE(SUM(co2_saved), 0) FROM users`)
	return total, err
}

func (s *PGStore) TotalActiveListings() (int, error) {
	var count int
	err := s.db.Get(&count, `SELECT count(*) FROM items`)
	return count, err
}

func (s *PGStore) TotalRepairHeroes() (int, error) {
	var count int
	err := s.db.Get(&count, `SELECT count(*) FROM users WHERE is_repair_hero`)
	return count, err
}

func (s *PGStore) Close() error {
	return s.db.Close()
}
