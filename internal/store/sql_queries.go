package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-gift-catalog/internal/config"
	"github.com/MKhiriev/go-gift-catalog/models"
)

// placeholders maps a supported driver to its bind parameter format.
var placeholders = map[string]sq.PlaceholderFormat{
	config.DriverPostgres: sq.Dollar,
	config.DriverSQLite:   sq.Question,
}

var (
	productColumns = []string{"id", "name", "price", "image_url"}
	memberColumns  = []string{"id", "email", "password_hash", "role", "created_at"}
)

func buildInsertProductQuery(b sq.StatementBuilderType, product models.Product) (string, []any, error) {
	return b.Insert(product.TableName()).
		Columns("name", "price", "image_url").
		Values(product.Name, product.Price, product.ImageURL).
		Suffix("RETURNING id, name, price, image_url").
		ToSql()
}

func buildSelectAllProductsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(productColumns...).
		From(models.Product{}.TableName()).
		OrderBy("id").
		ToSql()
}

func buildSelectProductByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(productColumns...).
		From(models.Product{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildUpdateProductQuery(b sq.StatementBuilderType, product models.Product) (string, []any, error) {
	return b.Update(product.TableName()).
		Set("name", product.Name).
		Set("price", product.Price).
		Set("image_url", product.ImageURL).
		Where(sq.Eq{"id": product.ID}).
		Suffix("RETURNING id, name, price, image_url").
		ToSql()
}

func buildDeleteProductQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(models.Product{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertMemberQuery(b sq.StatementBuilderType, member models.Member) (string, []any, error) {
	return b.Insert(member.TableName()).
		Columns("email", "password_hash", "role").
		Values(member.Email, member.PasswordHash, member.Role.String()).
		Suffix("RETURNING id, email, password_hash, role, created_at").
		ToSql()
}

func buildSelectMemberQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(memberColumns...).
		From(models.Member{}.TableName()).
		Where(where).
		ToSql()
}

func buildUpdateMemberRoleQuery(b sq.StatementBuilderType, id int64, role models.Role) (string, []any, error) {
	return b.Update(models.Member{}.TableName()).
		Set("role", role.String()).
		Where(sq.Eq{"id": id}).
		ToSql()
}
