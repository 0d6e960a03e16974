package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"tokoadmin/internal/app"
	"tokoadmin/internal/config"
	"tokoadmin/internal/database"
	"tokoadmin/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupApp builds the full application over a private in-memory SQLite
// database with foreign keys enforced.
func setupApp(t *testing.T) *app.App {
	t.Helper()

	db, err := database.Open("sqlite", database.MemoryDSN(uuid.NewString()))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps the shared in-memory database alive and avoids
	// table locks between connections.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, database.Migrate(db))

	cfg := config.Config{
		JWTSecret:         "test_jwt_secret",
		JWTTTL:            time.Hour,
		StrictColorValues: true,
		PublicURL:         "http://localhost:8080",
	}
	return app.NewApp(cfg, db, nil, app.WithoutAccessLog())
}

// TestMain runs setup and teardown for all tests
func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

// send performs a request and returns the status and raw body.
func send(t *testing.T, a *app.App, method, path, token string, body interface{}) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		if raw, ok := body.(string); ok {
			reader = bytes.NewBufferString(raw)
		} else {
			jsonBody, err := json.Marshal(body)
			require.NoError(t, err)
			reader = bytes.NewReader(jsonBody)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.Fiber.Test(req, -1) // -1 for no timeout
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func decode(t *testing.T, data []byte, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(data, out), string(data))
}

// login registers username and returns a bearer token for it.
func login(t *testing.T, a *app.App, username string) string {
	t.Helper()

	status, _ := send(t, a, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, status)

	status, data := send(t, a, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": username,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, status)
	var loginResp map[string]string
	decode(t, data, &loginResp)
	require.NotEmpty(t, loginResp["token"])
	return loginResp["token"]
}

func createStore(t *testing.T, a *app.App, token, name string) models.Store {
	t.Helper()
	status, data := send(t, a, http.MethodPost, "/api/stores", token, map[string]string{"name": name})
	require.Equal(t, http.StatusOK, status, string(data))
	var store models.Store
	decode(t, data, &store)
	require.NotEmpty(t, store.ID)
	return store
}

// catalogFixture holds one entity of every lookup kind in a store.
type catalogFixture struct {
	board    models.Board
	category models.Category
	size     models.Size
	color    models.Color
}

func seedCatalog(t *testing.T, a *app.App, token, storeID string) catalogFixture {
	t.Helper()
	var f catalogFixture

	status, data := send(t, a, http.MethodPost, "/api/"+storeID+"/boards", token, map[string]string{
		"label": "Summer", "imageUrl": "http://img/summer.png",
	})
	require.Equal(t, http.StatusOK, status, string(data))
	decode(t, data, &f.board)

	status, data = send(t, a, http.MethodPost, "/api/"+storeID+"/categories", token, map[string]string{
		"name": "Shirts", "boardId": f.board.ID,
	})
	require.Equal(t, http.StatusOK, status, string(data))
	decode(t, data, &f.category)

	status, data = send(t, a, http.MethodPost, "/api/"+storeID+"/sizes", token, map[string]string{
		"name": "Large", "value": "L",
	})
	require.Equal(t, http.StatusOK, status, string(data))
	decode(t, data, &f.size)

	status, data = send(t, a, http.MethodPost, "/api/"+storeID+"/colors", token, map[string]string{
		"name": "Red", "colorValue": "#FF0000",
	})
	require.Equal(t, http.StatusOK, status, string(data))
	decode(t, data, &f.color)

	return f
}

func productBody(f catalogFixture, name string, archived bool) map[string]interface{} {
	return map[string]interface{}{
		"name":       name,
		"price":      25.5,
		"categoryId": f.category.ID,
		"sizeId":     f.size.ID,
		"colorId":    f.color.ID,
		"isFeatured": true,
		"isArchived": archived,
		"images":     []map[string]string{{"url": "http://img/" + name + ".png"}},
	}
}

func TestAuthRegisterAndLogin(t *testing.T) {
	a := setupApp(t)

	body := map[string]string{
		"username": "testuser",
		"email":    "test@example.com",
		"password": "password123",
	}
	status, data := send(t, a, http.MethodPost, "/api/auth/register", "", body)
	assert.Equal(t, http.StatusCreated, status)
	var registerResp map[string]interface{}
	decode(t, data, &registerResp)
	assert.Equal(t, "User registered successfully", registerResp["message"])

	// Duplicate username
	status, data = send(t, a, http.MethodPost, "/api/auth/register", "", body)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "username 'testuser' already taken", string(data))

	status, data = send(t, a, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "another",
		"email":    "test@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "email 'test@example.com' already registered", string(data))

	status, data = send(t, a, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "shortpw",
		"email":    "shortpw@example.com",
		"password": "123",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Password must contain at least 6 character(s)", string(data))

	status, data = send(t, a, http.MethodPost, "/api/auth/register", "", "{not json")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid request body", string(data))

	status, data = send(t, a, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "testuser",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, status)
	var loginResp map[string]string
	decode(t, data, &loginResp)

	claims, err := a.Auth.ValidateToken(loginResp["token"])
	assert.NoError(t, err)
	assert.Equal(t, "testuser", claims["username"])
	assert.Contains(t, claims, "user_id")

	status, data = send(t, a, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "testuser",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid credentials", string(data))

	status, data = send(t, a, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "nobody",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid credentials", string(data))

	status, data = send(t, a, http.MethodPost, "/api/auth/login", "", map[string]string{"username": "testuser"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Password is required", string(data))
}

func TestColorLifecycle(t *testing.T) {
	a := setupApp(t)
	token := login(t, a, "owner")
	store := createStore(t, a, token, "Main")
	base := "/api/" + store.ID + "/colors"

	status, data := send(t, a, http.MethodPost, base, token, map[string]string{
		"name": "Red", "colorValue": "#FF0000",
	})
	require.Equal(t, http.StatusOK, status, string(data))
	var created models.Color
	decode(t, data, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, store.ID, created.StoreID)
	assert.Equal(t, "#FF0000", created.ColorValue)

	// Listing is public.
	status, data = send(t, a, http.MethodGet, base, "", nil)
	require.Equal(t, http.StatusOK, status)
	var colors []models.Color
	decode(t, data, &colors)
	require.Len(t, colors, 1)
	assert.Equal(t, created.ID, colors[0].ID)

	status, data = send(t, a, http.MethodGet, base+"/"+created.ID, "", nil)
	require.Equal(t, http.StatusOK, status)
	var fetched models.Color
	decode(t, data, &fetched)
	assert.Equal(t, "Red", fetched.Name)

	status, data = send(t, a, http.MethodPatch, base+"/"+created.ID, token, map[string]string{
		"name": "Crimson", "colorValue": "#DC143C",
	})
	require.Equal(t, http.StatusOK, status, string(data))
	var updated models.Color
	decode(t, data, &updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Crimson", updated.Name)
	assert.Equal(t, "#DC143C", updated.ColorValue)

	status, data = send(t, a, http.MethodDelete, base+"/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, status, string(data))
	var removed models.Color
	decode(t, data, &removed)
	assert.Equal(t, "Crimson", removed.Name)

	status, data = send(t, a, http.MethodGet, base+"/"+created.ID, "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "null", string(data))
}

func TestMutationsWithoutTokenAreRejected(t *testing.T) {
	a := setupApp(t)
	token := login(t, a, "owner")
	store := createStore(t, a, token, "Main")

	for _, kind := range models.Kinds {
		t.Run(string(kind), func(t *testing.T) {
			base := "/api/" + store.ID + "/" + kind.Route()

			// Missing identity wins over a malformed body.
			status, data := send(t, a, http.MethodPost, base, "", "{not json")
			assert.Equal(t, http.StatusUnauthorized, status)
			assert.Equal(t, "Unauthenticated", string(data))

			status, _ = send(t, a, http.MethodPatch, base+"/some-id", "", map[string]string{"name": "x"})
			assert.Equal(t, http.StatusUnauthorized, status)

			status, _ = send(t, a, http.MethodDelete, base+"/some-id", "", nil)
			assert.Equal(t, http.StatusUnauthorized, status)

			status, _ = send(t, a, http.MethodPost, base, "not-a-token", map[string]string{"name": "x"})
			assert.Equal(t, http.StatusUnauthorized, status)
		})
	}

	status, data := send(t, a, http.MethodGet, "/api/"+store.ID+"/colors", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, "[]", string(data))
}

func TestNonOwnerIsForbidden(t *testing.T) {
	a := setupApp(t)
	ownerToken := login(t, a, "owner")
	otherToken := login(t, a, "intruder")
	store := createStore(t, a, ownerToken, "Main")
	f := seedCatalog(t, a, ownerToken, store.ID)

	base := "/api/" + store.ID + "/sizes"
	status, data := send(t, a, http.MethodPost, base, otherToken, map[string]string{"name": "Small", "value": "S"})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Unauthorized", string(data))

	status, _ = send(t, a, http.MethodPatch, base+"/"+f.size.ID, otherToken, map[string]string{"name": "Huge", "value": "XXL"})
	assert.Equal(t, http.StatusForbidden, status)

	status, data = send(t, a, http.MethodDelete, base+"/"+f.size.ID, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Unauthorized", string(data))

	// Nothing changed.
	status, data = send(t, a, http.MethodGet, base+"/"+f.size.ID, "", nil)
	require.Equal(t, http.StatusOK, status)
	var size models.Size
	decode(t, data, &size)
	assert.Equal(t, "Large", size.Name)

	// A store that does not exist is owned by nobody.
	status, _ = send(t, a, http.MethodPost, "/api/"+uuid.NewString()+"/sizes", ownerToken, map[string]string{"name": "Small", "value": "S"})
	assert.Equal(t, http.StatusForbidden, status)
}

func TestValidationErrors(t *testing.T) {
	a := setupApp(t)
	token := login(t, a, "owner")
	store := createStore(t, a, token, "Main")
	otherToken := login(t, a, "intruder")

	tests := []struct {
		name    string
		path    string
		token   string
		body    interface{}
		message string
	}{
		{"size without name", "/sizes", token, map[string]string{"value": "L"}, "Name is required"},
		{"size without value", "/sizes", token, map[string]string{"name": "Large"}, "Value is required"},
		{"size with blank name", "/sizes", token, map[string]string{"name": "   ", "value": "L"}, "Name is required"},
		{"board without label", "/boards", token, map[string]string{"imageUrl": "http://img/1.png"}, "Label is required"},
		{"category without board", "/categories", token, map[string]string{"name": "Shirts"}, "Board id is required"},
		{"color without hash", "/colors", token, map[string]string{"name": "Red", "colorValue": "FF0000"}, "Color value must start with # (valid hex code)"},
		{"product without images", "/products", token, map[string]interface{}{"name": "Shirt", "price": 10}, "Images is required"},
		{"malformed body", "/colors", token, "{not json", "Invalid request body"},
		// Field errors are reported before ownership.
		{"non-owner with bad body", "/sizes", otherToken, map[string]string{}, "Name is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, data := send(t, a, http.MethodPost, "/api/"+store.ID+tt.path, tt.token, tt.body)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, tt.message, string(data))
		})
	}
}

func TestDeleteReferencedEntityFails(t *testing.T) {
	a := setupApp(t)
	token := login(t, a, "owner")
	store := createStore(t, a, token, "Main")
	f := seedCatalog(t, a, token, store.ID)

	status, data := send(t, a, http.MethodPost, "/api/"+store.ID+"/products", token, productBody(f, "shirt", false))
	require.Equal(t, http.StatusOK, status, string(data))

	status, data = send(t, a, http.MethodDelete, "/api/"+store.ID+"/colors/"+f.color.ID, token, nil)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal error", string(data))

	status, data = send(t, a, http.MethodDelete, "/api/"+store.ID+"/boards/"+f.board.ID, token, nil)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal error", string(data))

	status, data = send(t, a, http.MethodGet, "/api/"+store.ID+"/colors/"+f.color.ID, "", nil)
	require.Equal(t, http.StatusOK, status)
	var color models.Color
	decode(t, data, &color)
	assert.Equal(t, f.color.ID, color.ID)
}

func TestUpdateAndDeleteMissingEntity(t *testing.T) {
	a := setupApp(t)
	token := login(t, a, "owner")
	store := createStore(t, a, token, "Main")
	base := "/api/" + store.ID + "/sizes/" + uuid.NewString()

	status, data := send(t, a, http.MethodPatch, base, token, map[string]string{"name": "Large", "value": "L"})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "null", string(data))

	status, data = send(t, a, http.MethodDelete, base, token, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "null", string(data))
}

func TestEntityIsScopedToItsStore(t *testing.T) {
	a := setupApp(t)
	token := login(t, a, "owner")
	first := createStore(t, a, token, "First")
	second := createStore(t, a, token, "Second")
	f := seedCatalog(t, a, token, first.ID)

	// The caller owns both stores, but the color lives in the first.
	status, data := send(t, a, http.MethodPatch, "/api/"+second.ID+"/colors/"+f.color.ID, token, map[string]string{
		"name": "Blue", "colorValue": "#0000FF",
	})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "null", string(data))

	status, data = send(t, a, http.MethodGet, "/api/"+first.ID+"/colors/"+f.color.ID, "", nil)
	require.Equal(t, http.StatusOK, status)
	var color models.Color
	decode(t, data, &color)
	assert.Equal(t, "Red", color.Name)
}

func TestReferencesMustBelongToTheStore(t *testing.T) {
	a := setupApp(t)
	victimToken := login(t, a, "victim")
	attackerToken := login(t, a, "attacker")
	victim := createStore(t, a, victimToken, "Victim")
	attacker := createStore(t, a, attackerToken, "Attacker")
	theirs := seedCatalog(t, a, victimToken, victim.ID)
	mine := seedCatalog(t, a, attackerToken, attacker.ID)

	body := productBody(mine, "shirt", false)
	body["colorId"] = theirs.color.ID
	status, data := send(t, a, http.MethodPost, "/api/"+attacker.ID+"/products", attackerToken, body)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Color id is not in this store", string(data))

	status, data = send(t, a, http.MethodPost, "/api/"+attacker.ID+"/categories", attackerToken, map[string]string{
		"name": "Stolen", "boardId": theirs.board.ID,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Board id is not in this store", string(data))

	status, data = send(t, a, http.MethodPatch, "/api/"+attacker.ID+"/categories/"+mine.category.ID, attackerToken, map[string]string{
		"name": "Shirts", "boardId": theirs.board.ID,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Board id is not in this store", string(data))

	status, data = send(t, a, http.MethodPost, "/api/"+attacker.ID+"/products", attackerToken, productBody(mine, "shirt", false))
	require.Equal(t, http.StatusOK, status, string(data))
	var shirt models.Product
	decode(t, data, &shirt)

	body = productBody(mine, "shirt", false)
	body["sizeId"] = theirs.size.ID
	status, data = send(t, a, http.MethodPatch, "/api/"+attacker.ID+"/products/"+shirt.ID, attackerToken, body)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Size id is not in this store", string(data))

	// The victim's catalog carries no foreign rows, so it can be torn down.
	status, data = send(t, a, http.MethodDelete, "/api/"+victim.ID+"/colors/"+theirs.color.ID, victimToken, nil)
	assert.Equal(t, http.StatusOK, status, string(data))
	status, data = send(t, a, http.MethodDelete, "/api/stores/"+victim.ID, victimToken, nil)
	assert.Equal(t, http.StatusOK, status, string(data))
}

func TestProductListFilters(t *testing.T) {
	a := setupApp(t)
	token := login(t, a, "owner")
	store := createStore(t, a, token, "Main")
	f := seedCatalog(t, a, token, store.ID)
	base := "/api/" + store.ID + "/products"

	status, data := send(t, a, http.MethodPost, base, token, productBody(f, "shirt", false))
	require.Equal(t, http.StatusOK, status, string(data))
	var shirt models.Product
	decode(t, data, &shirt)
	require.Len(t, shirt.Images, 1)

	status, data = send(t, a, http.MethodPost, base, token, productBody(f, "old", true))
	require.Equal(t, http.StatusOK, status, string(data))

	status, data = send(t, a, http.MethodGet, base, "", nil)
	require.Equal(t, http.StatusOK, status)
	var products []models.Product
	decode(t, data, &products)
	require.Len(t, products, 1)
	assert.Equal(t, shirt.ID, products[0].ID)
	require.NotNil(t, products[0].Category)
	assert.Equal(t, "Shirts", products[0].Category.Name)

	status, data = send(t, a, http.MethodGet, base+"?colorId="+f.color.ID+"&isFeatured=true", "", nil)
	require.Equal(t, http.StatusOK, status)
	decode(t, data, &products)
	assert.Len(t, products, 1)

	status, data = send(t, a, http.MethodGet, base+"?sizeId="+uuid.NewString(), "", nil)
	require.Equal(t, http.StatusOK, status)
	decode(t, data, &products)
	assert.Empty(t, products)
}

func TestProductUpdateReplacesImages(t *testing.T) {
	a := setupApp(t)
	token := login(t, a, "owner")
	store := createStore(t, a, token, "Main")
	f := seedCatalog(t, a, token, store.ID)
	base := "/api/" + store.ID + "/products"

	status, data := send(t, a, http.MethodPost, base, token, productBody(f, "shirt", false))
	require.Equal(t, http.StatusOK, status, string(data))
	var shirt models.Product
	decode(t, data, &shirt)

	body := productBody(f, "shirt", false)
	body["images"] = []map[string]string{{"url": "http://img/a.png"}, {"url": "http://img/b.png"}}
	body["price"] = 30
	status, data = send(t, a, http.MethodPatch, base+"/"+shirt.ID, token, body)
	require.Equal(t, http.StatusOK, status, string(data))
	var updated models.Product
	decode(t, data, &updated)
	assert.Equal(t, 30.0, updated.Price)
	require.Len(t, updated.Images, 2)

	// Through a store that does not hold the product nothing is written,
	// images included.
	other := createStore(t, a, token, "Other")
	mine := seedCatalog(t, a, token, other.ID)
	status, data = send(t, a, http.MethodPatch, "/api/"+other.ID+"/products/"+shirt.ID, token, productBody(mine, "shirt", false))
	require.Equal(t, http.StatusOK, status, string(data))
	assert.Equal(t, "null", string(data))

	status, data = send(t, a, http.MethodGet, base+"/"+shirt.ID, "", nil)
	require.Equal(t, http.StatusOK, status)
	decode(t, data, &updated)
	assert.Len(t, updated.Images, 2)

	status, data = send(t, a, http.MethodDelete, base+"/"+shirt.ID, token, nil)
	require.Equal(t, http.StatusOK, status, string(data))

	// The color is free to go once no product uses it.
	status, _ = send(t, a, http.MethodDelete, "/api/"+store.ID+"/colors/"+f.color.ID, token, nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestStoreRoutes(t *testing.T) {
	a := setupApp(t)
	token := login(t, a, "owner")
	otherToken := login(t, a, "intruder")

	status, _ := send(t, a, http.MethodGet, "/api/stores", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, data := send(t, a, http.MethodPost, "/api/stores", token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Name is required", string(data))

	store := createStore(t, a, token, "Main")

	status, data = send(t, a, http.MethodGet, "/api/stores", token, nil)
	require.Equal(t, http.StatusOK, status)
	var stores []models.Store
	decode(t, data, &stores)
	require.Len(t, stores, 1)
	assert.Equal(t, store.ID, stores[0].ID)

	status, data = send(t, a, http.MethodGet, "/api/stores", otherToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, "[]", string(data))

	status, data = send(t, a, http.MethodPatch, "/api/stores/"+store.ID, token, map[string]string{"name": "Renamed"})
	require.Equal(t, http.StatusOK, status, string(data))
	var renamed models.Store
	decode(t, data, &renamed)
	assert.Equal(t, "Renamed", renamed.Name)

	status, _ = send(t, a, http.MethodDelete, "/api/stores/"+store.ID, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, status)

	seedCatalog(t, a, token, store.ID)
	status, _ = send(t, a, http.MethodDelete, "/api/stores/"+store.ID, token, nil)
	assert.Equal(t, http.StatusOK, status)

	status, data = send(t, a, http.MethodGet, "/api/"+store.ID+"/colors", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, "[]", string(data))
}

func TestDashboardPages(t *testing.T) {
	a := setupApp(t)
	token := login(t, a, "owner")
	otherToken := login(t, a, "intruder")
	store := createStore(t, a, token, "Main")
	f := seedCatalog(t, a, token, store.ID)

	status, _ := send(t, a, http.MethodGet, "/dashboard/"+store.ID+"/products/new", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, data := send(t, a, http.MethodGet, "/dashboard/"+store.ID+"/products/new", token, nil)
	require.Equal(t, http.StatusOK, status, string(data))
	var productPage struct {
		Title      string            `json:"title"`
		Editing    bool              `json:"editing"`
		Categories []models.Category `json:"categories"`
		Sizes      []models.Size     `json:"sizes"`
		Colors     []models.Color    `json:"colors"`
	}
	decode(t, data, &productPage)
	assert.Equal(t, "Create product", productPage.Title)
	assert.False(t, productPage.Editing)
	assert.Len(t, productPage.Categories, 1)
	assert.Len(t, productPage.Sizes, 1)
	assert.Len(t, productPage.Colors, 1)

	status, data = send(t, a, http.MethodGet, "/dashboard/"+store.ID+"/colors/"+f.color.ID, token, nil)
	require.Equal(t, http.StatusOK, status, string(data))
	var colorPage struct {
		Title       string `json:"title"`
		Action      string `json:"action"`
		InitialData struct {
			Name       string `json:"name"`
			ColorValue string `json:"colorValue"`
		} `json:"initialData"`
	}
	decode(t, data, &colorPage)
	assert.Equal(t, "Edit color", colorPage.Title)
	assert.Equal(t, "Save changes", colorPage.Action)
	assert.Equal(t, "#FF0000", colorPage.InitialData.ColorValue)

	status, data = send(t, a, http.MethodGet, "/dashboard/"+store.ID+"/categories", token, nil)
	require.Equal(t, http.StatusOK, status, string(data))
	var listPage struct {
		Heading string `json:"heading"`
		Rows    []struct {
			Kind       string `json:"kind"`
			BoardLabel string `json:"boardLabel"`
		} `json:"rows"`
	}
	decode(t, data, &listPage)
	assert.Equal(t, "Categories (1)", listPage.Heading)
	require.Len(t, listPage.Rows, 1)
	assert.Equal(t, "categories", listPage.Rows[0].Kind)
	assert.Equal(t, "Summer", listPage.Rows[0].BoardLabel)

	status, _ = send(t, a, http.MethodGet, "/dashboard/"+store.ID+"/colors", otherToken, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = send(t, a, http.MethodGet, "/dashboard/"+store.ID+"/orders", token, nil)
	assert.Equal(t, http.StatusNotFound, status)
}
