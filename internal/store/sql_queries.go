package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/fin360/models"
)

var (
	stockColumns = []string{
		"id", "user_id", "stock_name", "ticker_symbol", "number_of_shares",
		"purchase_price", "purchase_date", "created_at", "updated_at",
	}
	chatColumns = []string{
		"id", "user_id", "user_message", "bot_response", "intent",
		"confidence", "created_at", "updated_at",
	}
	userColumns = []string{
		"id", "clerk_id", "full_name", "email", "user_name", "profile_image_url",
		"kyc_verified", "role", "is_active", "profile", "created_at", "updated_at",
	}
)

func buildInsertStockQuery(b sq.StatementBuilderType, s models.StockRecord) (string, []any, error) {
	return b.Insert(s.TableName()).
		Columns(stockColumns...).
		Values(s.ID, s.UserID, s.StockName, s.TickerSymbol, s.NumberOfShares,
			s.PurchasePrice, s.PurchaseDate, s.CreatedAt, s.UpdatedAt).
		ToSql()
}

func buildListStocksQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select(stockColumns...).
		From(models.StockRecord{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
}

func buildDeleteStockQuery(b sq.StatementBuilderType, userID, stockID string) (string, []any, error) {
	return b.Delete(models.StockRecord{}.TableName()).
		Where(sq.Eq{"id": stockID, "user_id": userID}).
		ToSql()
}

func buildInsertChatQuery(b sq.StatementBuilderType, c models.ChatRecord) (string, []any, error) {
	return b.Insert(c.TableName()).
		Columns(chatColumns...).
		Values(c.ID, c.UserID, c.UserMessage, c.BotResponse, c.Intent,
			c.Confidence, c.CreatedAt, c.UpdatedAt).
		ToSql()
}

// buildListChatsQuery selects chats oldest first. An empty userID selects
// every user's chats.
func buildListChatsQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	q := b.Select(chatColumns...).
		From(models.ChatRecord{}.TableName()).
		OrderBy("created_at ASC")
	if userID != "" {
		q = q.Where(sq.Eq{"user_id": userID})
	}
	return q.ToSql()
}

func buildInsertUserQuery(b sq.StatementBuilderType, u models.User) (string, []any, error) {
	return b.Insert(u.TableName()).
		Columns(userColumns...).
		Values(u.ID, u.ClerkID, u.FullName, u.Email, u.UserName, u.ProfileImageURL,
			u.KYCVerified, u.Role, u.IsActive, u.Profile, u.CreatedAt, u.UpdatedAt).
		ToSql()
}

// buildFindUserQuery selects the user whose column equals value. column
// is always a constant chosen by the repository.
func buildFindUserQuery(b sq.StatementBuilderType, column, value string) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{column: value}).
		ToSql()
}

func buildUpdateUserProfileQuery(b sq.StatementBuilderType, userID string, profile models.CipheredDocument, now time.Time) (string, []any, error) {
	return b.Update(models.User{}.TableName()).
		Set("profile", profile).
		Set("updated_at", now).
		Where(sq.Eq{"id": userID}).
		ToSql()
}
