package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"shelter-dogs/internal/domain/dogs"
	"shelter-dogs/internal/domain/dogs/profile"
)

type DogsRepo struct {
	db *sql.DB
}

func NewDogsRepo(db *sql.DB) *DogsRepo {
	return &DogsRepo{db: db}
}

const dogColumns = `
	id, name, size, sex, age,
	description, photo_url, is_adopted,
	created_at, updated_at`

func (r *DogsRepo) Create(ctx context.Context, d dogs.Dog) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO dogs (`+dogColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		d.ID,
		d.Name,
		string(d.Size),
		toNullSex(d.Sex),
		d.Age,
		d.Description,
		d.PhotoURL,
		d.Adopted,
		d.CreatedAt,
		d.UpdatedAt,
	)
	return err
}

func (r *DogsRepo) Update(ctx context.Context, d dogs.Dog) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE dogs
		SET
			name = $2,
			size = $3,
			sex = $4,
			age = $5,
			description = $6,
			photo_url = $7,
			is_adopted = $8,
			updated_at = $9
		WHERE id = $1
	`,
		d.ID,
		d.Name,
		string(d.Size),
		toNullSex(d.Sex),
		d.Age,
		d.Description,
		d.PhotoURL,
		d.Adopted,
		d.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return dogs.ErrNotFound
	}
	return nil
}

func (r *DogsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM dogs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return dogs.ErrNotFound
	}
	return nil
}

func (r *DogsRepo) GetByID(ctx context.Context, id string) (dogs.Dog, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return dogs.Dog{}, dogs.ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `SELECT `+dogColumns+` FROM dogs WHERE id = $1`, id)
	return scanDog(row)
}

func (r *DogsRepo) GetByName(ctx context.Context, name string) (dogs.Dog, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return dogs.Dog{}, dogs.ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `SELECT `+dogColumns+` FROM dogs WHERE lower(name) = lower($1)`, name)
	return scanDog(row)
}

func (r *DogsRepo) List(ctx context.Context, f dogs.ListFilter) ([]dogs.Dog, error) {
	query, args := buildListQuery(f)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]dogs.Dog, 0)
	for rows.Next() {
		d, err := scanDog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// buildListQuery arma el WHERE dinámico con placeholders $N.
func buildListQuery(f dogs.ListFilter) (string, []any) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if f.Size != "" {
		add("size = $%d", string(f.Size))
	}
	if f.Sex != "" {
		add("sex = $%d", string(f.Sex))
	}
	if f.Adopted != nil {
		add("is_adopted = $%d", *f.Adopted)
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		add("name ILIKE $%d", "%"+escapeLike(q)+"%")
	}

	var b strings.Builder
	b.WriteString("SELECT " + dogColumns + " FROM dogs")
	if len(where) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(where, " AND "))
	}
	b.WriteString(" ORDER BY name ASC, id ASC")
	if f.Limit > 0 {
		args = append(args, f.Limit)
		fmt.Fprintf(&b, " LIMIT $%d", len(args))
	}
	return b.String(), args
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDog(row rowScanner) (dogs.Dog, error) {
	var (
		d    dogs.Dog
		size string
		sex  sql.NullString
	)
	if err := row.Scan(
		&d.ID,
		&d.Name,
		&size,
		&sex,
		&d.Age,
		&d.Description,
		&d.PhotoURL,
		&d.Adopted,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dogs.Dog{}, dogs.ErrNotFound
		}
		return dogs.Dog{}, err
	}
	d.Size = profile.Size(size)
	if sex.Valid {
		d.Sex = profile.Sex(sex.String)
	}
	return d, nil
}

// sex es nullable: "" se guarda como NULL.
func toNullSex(s profile.Sex) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: string(s), Valid: true}
}
