package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/classifieds-api/internal/models"
)

const testSchema = `
	CREATE TABLE IF NOT EXISTS members (
		member_id UUID PRIMARY KEY,
		username VARCHAR(150) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(32),
		about TEXT NOT NULL DEFAULT '',
		joined_at TIMESTAMP NOT NULL DEFAULT NOW(),
		password_hash VARCHAR(255) NOT NULL
	);
	CREATE UNIQUE INDEX IF NOT EXISTS members_username_lower_idx ON members (LOWER(username));
	CREATE UNIQUE INDEX IF NOT EXISTS members_email_lower_idx ON members (LOWER(email));

	CREATE TABLE IF NOT EXISTS categories (
		category_id BIGSERIAL PRIMARY KEY,
		slug VARCHAR(64) NOT NULL UNIQUE,
		name VARCHAR(128) NOT NULL
	);

	CREATE TABLE IF NOT EXISTS ads (
		ad_id UUID PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		price NUMERIC(12,2) NOT NULL CHECK (price >= 0),
		category_id BIGINT NOT NULL REFERENCES categories(category_id) ON DELETE RESTRICT,
		contact_info TEXT NOT NULL,
		author_id UUID NOT NULL REFERENCES members(member_id) ON DELETE CASCADE,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
		is_active BOOLEAN NOT NULL DEFAULT TRUE
	);
`

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	_, err = db.Exec(testSchema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func newMember(username, email string) *models.MemberDB {
	return &models.MemberDB{
		MemberID:     uuid.New(),
		Username:     username,
		Email:        email,
		About:        "test member",
		PasswordHash: "hash",
	}
}

func TestMemberWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewMemberWriteRepository(db)
	ctx := context.Background()

	member := newMember("alice", "alice@example.com")
	err := repo.Save(ctx, member)
	assert.NoError(t, err)
	assert.False(t, member.JoinedAt.IsZero())

	t.Run("duplicate username differing in case", func(t *testing.T) {
		err := repo.Save(ctx, newMember("ALICE", "other@example.com"))
		assert.Error(t, err)
	})

	t.Run("duplicate email differing in case", func(t *testing.T) {
		err := repo.Save(ctx, newMember("someone", "ALICE@example.com"))
		assert.Error(t, err)
	})
}

func TestMemberWriteRepository_Update(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewMemberWriteRepository(db)
	readRepo := NewMemberReadRepository(db)
	ctx := context.Background()

	member := newMember("bob", "bob@example.com")
	assert.NoError(t, writeRepo.Save(ctx, member))

	phone := "+1-555-0100"
	member.Email = "bob2@example.com"
	member.Phone = &phone
	member.About = "updated"
	member.Username = "renamed" // must be ignored

	assert.NoError(t, writeRepo.Update(ctx, member))

	got, err := readRepo.GetByID(ctx, member.MemberID)
	assert.NoError(t, err)
	assert.Equal(t, "bob2@example.com", got.Email)
	assert.Equal(t, phone, *got.Phone)
	assert.Equal(t, "updated", got.About)
	assert.Equal(t, "bob", got.Username)
}

func TestMemberReadRepository_GetByIdentifier(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewMemberWriteRepository(db)
	readRepo := NewMemberReadRepository(db)
	ctx := context.Background()

	assert.NoError(t, writeRepo.Save(ctx, newMember("charlie", "charlie@example.com")))
	assert.NoError(t, writeRepo.Save(ctx, newMember("dave", "dave@example.com")))

	t.Run("by username case-insensitive", func(t *testing.T) {
		member, err := readRepo.GetByIdentifier(ctx, "CHARLIE")
		assert.NoError(t, err)
		assert.NotNil(t, member)
		assert.Equal(t, "charlie", member.Username)
	})

	t.Run("by email case-insensitive", func(t *testing.T) {
		member, err := readRepo.GetByIdentifier(ctx, "DAVE@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, member)
		assert.Equal(t, "dave", member.Username)
	})

	t.Run("username match wins over email match", func(t *testing.T) {
		// one member's username equals another member's email local part
		assert.NoError(t, writeRepo.Save(ctx, newMember("eve@example.com", "eve.other@example.com")))
		assert.NoError(t, writeRepo.Save(ctx, newMember("eve", "eve@example.net")))

		member, err := readRepo.GetByIdentifier(ctx, "eve@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, member)
		assert.Equal(t, "eve@example.com", member.Username)
	})

	t.Run("no match", func(t *testing.T) {
		member, err := readRepo.GetByIdentifier(ctx, "nobody")
		assert.NoError(t, err)
		assert.Nil(t, member)
	})
}

func TestMemberReadRepository_Exists(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewMemberWriteRepository(db)
	readRepo := NewMemberReadRepository(db)
	ctx := context.Background()

	member := newMember("frank", "frank@example.com")
	assert.NoError(t, writeRepo.Save(ctx, member))

	t.Run("username exists ignoring case", func(t *testing.T) {
		exists, err := readRepo.ExistsUsername(ctx, "FRANK")
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("username absent", func(t *testing.T) {
		exists, err := readRepo.ExistsUsername(ctx, "grace")
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("email exists ignoring case", func(t *testing.T) {
		exists, err := readRepo.ExistsEmail(ctx, "FRANK@example.com", nil)
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("own email excluded", func(t *testing.T) {
		exists, err := readRepo.ExistsEmail(ctx, "frank@example.com", &member.MemberID)
		assert.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestMemberReadRepository_GetByID(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewMemberWriteRepository(db)
	readRepo := NewMemberReadRepository(db)
	ctx := context.Background()

	member := newMember("henry", "henry@example.com")
	assert.NoError(t, writeRepo.Save(ctx, member))

	got, err := readRepo.GetByID(ctx, member.MemberID)
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, member.Username, got.Username)

	missing, err := readRepo.GetByID(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, missing)
}
