package storage

import (
	"database/sql"
	"errors"

	"ordering-backend/internal/domain"
)

// InsertReviewAndAttach creates the review and sets the order's back
// reference in one transaction. The `review_id IS NULL` guard makes the
// attach conditional: when another review won the race, zero rows update,
// the transaction rolls back and ErrDuplicateReview is returned.
func (r *PostgresRepository) InsertReviewAndAttach(review *domain.Review) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`
		INSERT INTO reviews (order_id, restaurant_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, review.OrderID, review.RestaurantID, review.Content).Scan(&review.ID, &review.CreatedAt); err != nil {
		return err
	}

	result, err := tx.Exec(`
		UPDATE orders SET review_id = $1 WHERE id = $2 AND review_id IS NULL
	`, review.ID, review.OrderID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrDuplicateReview
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetReview(reviewID int) (*domain.Review, error) {
	var review domain.Review
	err := r.DB.QueryRow(`
		SELECT id, order_id, restaurant_id, content, created_at
		FROM reviews
		WHERE id = $1
	`, reviewID).Scan(&review.ID, &review.OrderID, &review.RestaurantID, &review.Content, &review.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrReviewNotFound
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *PostgresRepository) UpdateReviewText(reviewID int, content string) error {
	result, err := r.DB.Exec(`UPDATE reviews SET content = $1 WHERE id = $2`, content, reviewID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}

// DeleteReview removes the review and clears the order's back reference,
// returning the order to the reviewable state.
func (r *PostgresRepository) DeleteReview(reviewID int) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE orders SET review_id = NULL WHERE review_id = $1`, reviewID); err != nil {
		return err
	}

	result, err := tx.Exec(`DELETE FROM reviews WHERE id = $1`, reviewID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrReviewNotFound
	}

	return tx.Commit()
}
