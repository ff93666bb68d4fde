package catalog

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresLoader_Load(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"doc"}).
		AddRow([]byte(`{"start":"Київ","end":"Львів","price":500}`)).
		AddRow([]byte(`{"start":"Київ","end":"Одеса"}`))
	mock.ExpectQuery("SELECT doc").WillReturnRows(rows)

	routes, err := NewPostgresLoader(db).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, routes, 2)
	assert.Equal(t, "Львів", routes[0].End)
	require.NotNil(t, routes[0].Price)
	assert.Equal(t, 500.0, *routes[0].Price)
	assert.Nil(t, routes[1].Price)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresLoader_BadDocument(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"doc"}).AddRow([]byte(`{"start":`))
	mock.ExpectQuery("SELECT doc").WillReturnRows(rows)

	_, err = NewPostgresLoader(db).Load(context.Background())
	assert.Error(t, err)
}

func TestPostgresLoader_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT doc").WillReturnError(assert.AnError)

	_, err = NewPostgresLoader(db).Load(context.Background())
	assert.Error(t, err)
}
