package repository_test

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/hackateen/mural/db"
	"github.com/hackateen/mural/internal/apperror"
	"github.com/hackateen/mural/internal/models"
	"github.com/hackateen/mural/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	if os.Getenv("DB_HOST") == "" {
		t.Skip("Skipping test - no database connection configured")
	}

	conn, err := db.Connect(db.DSNFromEnv())
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))

	require.NoError(t, conn.Exec("TRUNCATE TABLE comments, posts, users RESTART IDENTITY CASCADE").Error)

	return conn
}

func seedUser(t *testing.T, users *repository.UserRepository) *models.User {
	t.Helper()

	user := &models.User{
		Name:     "Ana",
		Email:    "ana@x.com",
		Password: "hashed",
	}
	require.NoError(t, users.Create(user))
	require.NotZero(t, user.UserID)

	return user
}

func TestUserCreateAndGetByID(t *testing.T) {
	conn := setupDB(t)
	users := repository.NewUserRepository(conn)

	created := seedUser(t, users)

	got, err := users.GetByID(created.UserID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.Email, got.Email)
}

func TestUserDuplicateEmailRejected(t *testing.T) {
	conn := setupDB(t)
	users := repository.NewUserRepository(conn)

	seedUser(t, users)

	dup := &models.User{Name: "Outra", Email: "ana@x.com", Password: "hashed"}
	assert.Error(t, users.Create(dup))
}

func TestUserGetByIDNotFound(t *testing.T) {
	conn := setupDB(t)
	users := repository.NewUserRepository(conn)

	_, err := users.GetByID(999)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestUserUpdateByIDMergesOnlySuppliedColumns(t *testing.T) {
	conn := setupDB(t)
	users := repository.NewUserRepository(conn)

	created := seedUser(t, users)

	updated, err := users.UpdateByID(created.UserID, map[string]interface{}{"name": "Ana Maria"})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", updated.Name)
	assert.Equal(t, "ana@x.com", updated.Email)
	assert.Equal(t, "hashed", updated.Password)
}

func TestUserDeleteByID(t *testing.T) {
	conn := setupDB(t)
	users := repository.NewUserRepository(conn)

	created := seedUser(t, users)

	require.NoError(t, users.DeleteByID(created.UserID))

	err := users.DeleteByID(created.UserID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestListEmptyIsNotAnError(t *testing.T) {
	conn := setupDB(t)
	posts := repository.NewPostRepository(conn)

	all, err := posts.List()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestPostCreateRequiresExistingUser(t *testing.T) {
	conn := setupDB(t)
	posts := repository.NewPostRepository(conn)

	orphan := &models.Post{
		Title:   "T",
		Type:    models.PostTypeEvent,
		Content: "C",
		Date:    datatypes.Date(time.Now()),
		UserID:  999,
	}

	assert.Error(t, posts.Create(orphan))
}

func TestPostCreateRejectsUnknownType(t *testing.T) {
	conn := setupDB(t)
	users := repository.NewUserRepository(conn)
	posts := repository.NewPostRepository(conn)

	user := seedUser(t, users)

	bad := &models.Post{
		Title:   "T",
		Type:    "party",
		Content: "C",
		Date:    datatypes.Date(time.Now()),
		UserID:  user.UserID,
	}

	assert.Error(t, posts.Create(bad))
}

func TestDeleteUserCascadesToPostsAndComments(t *testing.T) {
	conn := setupDB(t)
	users := repository.NewUserRepository(conn)
	posts := repository.NewPostRepository(conn)
	comments := repository.NewCommentRepository(conn)

	user := seedUser(t, users)

	post := &models.Post{
		Title:   "T",
		Type:    models.PostTypeEvent,
		Content: "C",
		Date:    datatypes.Date(time.Now()),
		UserID:  user.UserID,
	}
	require.NoError(t, posts.Create(post))

	comment := &models.Comment{
		Content: "hi",
		Date:    datatypes.Date(time.Now()),
		UserID:  user.UserID,
		PostID:  post.PostID,
	}
	require.NoError(t, comments.Create(comment))

	require.NoError(t, users.DeleteByID(user.UserID))

	_, err := posts.GetByID(post.PostID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	_, err = comments.GetByID(comment.CommentID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestDeletePostCascadesToComments(t *testing.T) {
	conn := setupDB(t)
	users := repository.NewUserRepository(conn)
	posts := repository.NewPostRepository(conn)
	comments := repository.NewCommentRepository(conn)

	user := seedUser(t, users)

	post := &models.Post{
		Title:   "T",
		Type:    models.PostTypeAlert,
		Content: "C",
		Date:    datatypes.Date(time.Now()),
		UserID:  user.UserID,
	}
	require.NoError(t, posts.Create(post))

	comment := &models.Comment{
		Content: "hi",
		Date:    datatypes.Date(time.Now()),
		UserID:  user.UserID,
		PostID:  post.PostID,
	}
	require.NoError(t, comments.Create(comment))

	require.NoError(t, posts.DeleteByID(post.PostID))

	_, err := comments.GetByID(comment.CommentID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	// The author survives the cascade.
	_, err = users.GetByID(user.UserID)
	assert.NoError(t, err)
}
