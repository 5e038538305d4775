package postgres

import (
	"database/sql"
	"fmt"

	"shareBooker/internal/config"
	"shareBooker/internal/models"
	"shareBooker/internal/storage"

	_ "github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) UserByID(id int64) (models.User, error) {
	query := `
		SELECT id, name, email
		FROM users
		WHERE id = $1`

	var u models.User
	err := s.DB.QueryRow(query, id).Scan(&u.ID, &u.Name, &u.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, storage.ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

func (s *Storage) ItemByID(id int64) (models.Item, error) {
	query := `
		SELECT id, name, description, available, owner_id, request_id
		FROM items
		WHERE id = $1`

	var i models.Item
	err := s.DB.QueryRow(query, id).Scan(&i.ID, &i.Name, &i.Description, &i.Available, &i.OwnerID, &i.RequestID)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Item{}, storage.ErrItemNotFound
		}
		return models.Item{}, fmt.Errorf("failed to get item: %w", err)
	}

	return i, nil
}

func (s *Storage) ItemsOwnedBy(userID int64) ([]models.Item, error) {
	query := `
		SELECT id, name, description, available, owner_id, request_id
		FROM items
		WHERE owner_id = $1`

	rows, err := s.DB.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get owned items: %w", err)
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var i models.Item
		if err = rows.Scan(&i.ID, &i.Name, &i.Description, &i.Available, &i.OwnerID, &i.RequestID); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, i)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	return items, nil
}

const bookingColumns = `
	b.id, b.start_date, b.end_date, b.status,
	i.id, i.name, i.description, i.available, i.owner_id, i.request_id,
	u.id, u.name, u.email`

const bookingJoins = `
	FROM bookings b
	JOIN items i ON i.id = b.item_id
	JOIN users u ON u.id = b.booker_id`

func scanBooking(row interface{ Scan(dest ...any) error }) (models.Booking, error) {
	var b models.Booking
	err := row.Scan(
		&b.ID, &b.Start, &b.End, &b.Status,
		&b.Item.ID, &b.Item.Name, &b.Item.Description, &b.Item.Available, &b.Item.OwnerID, &b.Item.RequestID,
		&b.Booker.ID, &b.Booker.Name, &b.Booker.Email,
	)
	return b, err
}

func (s *Storage) Save(b models.Booking) (models.Booking, error) {
	query := `
		INSERT INTO bookings (start_date, end_date, item_id, booker_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := s.DB.QueryRow(query, b.Start, b.End, b.Item.ID, b.Booker.ID, b.Status).Scan(&b.ID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("failed to create booking: %w", err)
	}

	return b, nil
}

func (s *Storage) ByID(id int64) (models.Booking, error) {
	query := `SELECT` + bookingColumns + bookingJoins + `
	WHERE b.id = $1`

	b, err := scanBooking(s.DB.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Booking{}, storage.ErrBookingNotFound
		}
		return models.Booking{}, fmt.Errorf("failed to get booking: %w", err)
	}

	return b, nil
}

func (s *Storage) ByBooker(userID int64) ([]models.Booking, error) {
	query := `SELECT` + bookingColumns + bookingJoins + `
	WHERE b.booker_id = $1`

	return s.queryBookings(query, userID)
}

func (s *Storage) ByOwnedItems(ownerID int64) ([]models.Booking, error) {
	query := `SELECT` + bookingColumns + bookingJoins + `
	WHERE i.owner_id = $1`

	return s.queryBookings(query, ownerID)
}

func (s *Storage) ForItem(itemID int64) ([]models.Booking, error) {
	query := `SELECT` + bookingColumns + bookingJoins + `
	WHERE b.item_id = $1`

	return s.queryBookings(query, itemID)
}

func (s *Storage) PageByBooker(userID int64, page, size int) ([]models.Booking, error) {
	query := `SELECT` + bookingColumns + bookingJoins + `
	WHERE b.booker_id = $1
	ORDER BY b.start_date DESC
	LIMIT $2 OFFSET $3`

	return s.queryBookings(query, userID, size, page*size)
}

func (s *Storage) PageByOwnedItems(ownerID int64, page, size int) ([]models.Booking, error) {
	query := `SELECT` + bookingColumns + bookingJoins + `
	WHERE i.owner_id = $1
	ORDER BY b.start_date DESC
	LIMIT $2 OFFSET $3`

	return s.queryBookings(query, ownerID, size, page*size)
}

// UpdateStatus performs the compare-and-swap transition: the UPDATE only
// matches while the persisted status still equals the expected one, so a
// concurrent decider that lost the race gets ErrStatusChanged.
func (s *Storage) UpdateStatus(id int64, from, to models.Status) (models.Booking, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return models.Booking{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	updateQuery := `
		UPDATE bookings
		SET status = $3
		WHERE id = $1 AND status = $2`

	result, err := tx.Exec(updateQuery, id, from, to)
	if err != nil {
		return models.Booking{}, fmt.Errorf("failed to update booking status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Booking{}, fmt.Errorf("failed to check update result: %w", err)
	}

	if affected == 0 {
		var exists bool
		if err = tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM bookings WHERE id = $1)`, id).Scan(&exists); err != nil {
			return models.Booking{}, fmt.Errorf("failed to check booking: %w", err)
		}
		if !exists {
			return models.Booking{}, storage.ErrBookingNotFound
		}
		return models.Booking{}, storage.ErrStatusChanged
	}

	query := `SELECT` + bookingColumns + bookingJoins + `
	WHERE b.id = $1`

	b, err := scanBooking(tx.QueryRow(query, id))
	if err != nil {
		return models.Booking{}, fmt.Errorf("failed to get updated booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return models.Booking{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return b, nil
}

func (s *Storage) queryBookings(query string, args ...any) ([]models.Booking, error) {
	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}
