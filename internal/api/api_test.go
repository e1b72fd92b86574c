package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Apisit250aps/transactions/internal/service"
	"github.com/Apisit250aps/transactions/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "api-test-secret"

// envelope mirrors the wire response for decoding in tests
type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  map[string][]string `json:"errors"`
	Error   string              `json:"error"`
}

// newTestRouter builds the full route tree over an in-memory store, with
// caching disabled
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	st := store.NewMemoryStore()
	wallets := service.NewWalletService(st)
	router := &Router{
		Auth:         service.NewAuthService(st, testSecret),
		Transactions: service.NewTransactionService(st, wallets),
		JWTSecret:    testSecret,
	}
	return router.Engine()
}

// doJSON performs one request and decodes the envelope
func doJSON(t *testing.T, e *gin.Engine, method, path, token string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	return rec.Code, env
}

// register creates a user through the API
func register(t *testing.T, e *gin.Engine, name, password string) {
	t.Helper()
	code, _ := doJSON(t, e, http.MethodPost, "/api/auth/register", "", gin.H{"name": name, "password": password})
	require.Equal(t, http.StatusCreated, code)
}

// login returns a bearer token for the user
func login(t *testing.T, e *gin.Engine, name, password string) string {
	t.Helper()
	code, env := doJSON(t, e, http.MethodPost, "/api/auth/login", "", gin.H{"name": name, "password": password})
	require.Equal(t, http.StatusOK, code)
	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func TestRegisterEndpoint(t *testing.T) {
	e := newTestRouter()

	t.Run("first registration succeeds", func(t *testing.T) {
		code, env := doJSON(t, e, http.MethodPost, "/api/auth/register", "", gin.H{"name": "alice", "password": "secret1"})
		assert.Equal(t, http.StatusCreated, code)
		assert.True(t, env.Success)
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		code, env := doJSON(t, e, http.MethodPost, "/api/auth/register", "", gin.H{"name": "alice", "password": "other99"})
		assert.Equal(t, http.StatusConflict, code)
		assert.False(t, env.Success)
		assert.Equal(t, "Name already exists", env.Message)
	})

	t.Run("violations come back per field", func(t *testing.T) {
		code, env := doJSON(t, e, http.MethodPost, "/api/auth/register", "", gin.H{"name": "", "password": "123"})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.False(t, env.Success)
		assert.Contains(t, env.Errors, "name")
		assert.Contains(t, env.Errors, "password")
	})
}

func TestLoginEndpoint(t *testing.T) {
	e := newTestRouter()
	register(t, e, "alice", "secret1")

	t.Run("valid credentials return token and user", func(t *testing.T) {
		code, env := doJSON(t, e, http.MethodPost, "/api/auth/login", "", gin.H{"name": "alice", "password": "secret1"})
		require.Equal(t, http.StatusOK, code)
		var data struct {
			Token string `json:"token"`
			User  struct {
				ID       string `json:"id"`
				Name     string `json:"name"`
				Password string `json:"-"`
			} `json:"user"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.NotEmpty(t, data.Token)
		assert.Equal(t, "alice", data.User.Name)
		// The password hash never crosses the wire
		assert.NotContains(t, string(env.Data), "password")
	})

	t.Run("unknown name is 404", func(t *testing.T) {
		code, env := doJSON(t, e, http.MethodPost, "/api/auth/login", "", gin.H{"name": "nobody", "password": "secret1"})
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "User not found", env.Message)
	})

	t.Run("wrong password is 401", func(t *testing.T) {
		code, _ := doJSON(t, e, http.MethodPost, "/api/auth/login", "", gin.H{"name": "alice", "password": "wrong!!"})
		assert.Equal(t, http.StatusUnauthorized, code)
	})

	t.Run("missing fields are 400", func(t *testing.T) {
		code, _ := doJSON(t, e, http.MethodPost, "/api/auth/login", "", gin.H{"name": "alice"})
		assert.Equal(t, http.StatusBadRequest, code)
	})
}

func TestAuthenticationGateway(t *testing.T) {
	e := newTestRouter()

	t.Run("missing header is 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/transaction", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token is 401", func(t *testing.T) {
		code, env := doJSON(t, e, http.MethodGet, "/api/transaction", "garbage", nil)
		assert.Equal(t, http.StatusUnauthorized, code)
		assert.False(t, env.Success)
	})
}

func TestTransactionEndpoints(t *testing.T) {
	e := newTestRouter()
	register(t, e, "alice", "secret1")
	register(t, e, "mallory", "secret1")
	alice := login(t, e, "alice", "secret1")
	mallory := login(t, e, "mallory", "secret1")

	// decodeTx pulls the transaction payload out of an envelope
	decodeTx := func(t *testing.T, env envelope) map[string]any {
		t.Helper()
		var tx map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &tx))
		return tx
	}

	code, env := doJSON(t, e, http.MethodPost, "/api/transaction", alice, gin.H{
		"name": "lunch", "amount": 120, "type": -1,
	})
	require.Equal(t, http.StatusCreated, code)
	created := decodeTx(t, env)
	txID, _ := created["id"].(string)
	require.NotEmpty(t, txID)

	t.Run("create returns the generated record", func(t *testing.T) {
		assert.Equal(t, "lunch", created["name"])
		assert.Equal(t, float64(120), created["amount"])
		assert.Equal(t, float64(-1), created["type"])
		assert.Equal(t, created["createdAt"], created["updatedAt"])
	})

	t.Run("create rejects bad fields per field", func(t *testing.T) {
		code, env := doJSON(t, e, http.MethodPost, "/api/transaction", alice, gin.H{
			"name": "bad", "amount": -1, "type": 5,
		})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Contains(t, env.Errors, "amount")
		assert.Contains(t, env.Errors, "type")
	})

	t.Run("owner reads the transaction back", func(t *testing.T) {
		code, env := doJSON(t, e, http.MethodGet, "/api/transaction/"+txID, alice, nil)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, txID, decodeTx(t, env)["id"])
	})

	t.Run("another user gets 404, not 403", func(t *testing.T) {
		code, env := doJSON(t, e, http.MethodGet, "/api/transaction/"+txID, mallory, nil)
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "Transaction not found", env.Message)
	})

	t.Run("partial update touches only present fields", func(t *testing.T) {
		code, env := doJSON(t, e, http.MethodPut, "/api/transaction/"+txID, alice, gin.H{"amount": 95})
		require.Equal(t, http.StatusOK, code)
		tx := decodeTx(t, env)
		assert.Equal(t, float64(95), tx["amount"])
		assert.Equal(t, "lunch", tx["name"])
	})

	t.Run("delete succeeds once then keeps reporting 404", func(t *testing.T) {
		code, _ := doJSON(t, e, http.MethodDelete, "/api/transaction/"+txID, alice, nil)
		assert.Equal(t, http.StatusOK, code)

		code, env := doJSON(t, e, http.MethodDelete, "/api/transaction/"+txID, alice, nil)
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "Transaction not found", env.Message)

		code, _ = doJSON(t, e, http.MethodDelete, "/api/transaction/"+txID, alice, nil)
		assert.Equal(t, http.StatusNotFound, code)
	})
}

func TestTransactionListEndpoint(t *testing.T) {
	e := newTestRouter()
	register(t, e, "alice", "secret1")
	alice := login(t, e, "alice", "secret1")

	// Seed 12 transactions
	for i := 0; i < 12; i++ {
		code, _ := doJSON(t, e, http.MethodPost, "/api/transaction", alice, gin.H{
			"name": fmt.Sprintf("item-%d", i), "amount": i, "type": 1,
		})
		require.Equal(t, http.StatusCreated, code)
	}

	// listData is the data payload of the list endpoint
	type listData struct {
		Transactions []struct {
			ID        string `json:"id"`
			CreatedAt string `json:"createdAt"`
		} `json:"transactions"`
		Meta struct {
			Page       int   `json:"page"`
			Limit      int   `json:"limit"`
			Total      int64 `json:"total"`
			TotalPages int   `json:"totalPages"`
		} `json:"meta"`
	}

	fetch := func(t *testing.T, query string) listData {
		t.Helper()
		code, env := doJSON(t, e, http.MethodGet, "/api/transaction"+query, alice, nil)
		require.Equal(t, http.StatusOK, code)
		var data listData
		require.NoError(t, json.Unmarshal(env.Data, &data))
		return data
	}

	t.Run("page of 5 over 12 items", func(t *testing.T) {
		data := fetch(t, "?page=1&limit=5")
		assert.Len(t, data.Transactions, 5)
		assert.Equal(t, int64(12), data.Meta.Total)
		assert.Equal(t, 3, data.Meta.TotalPages)
	})

	t.Run("defaults apply without query parameters", func(t *testing.T) {
		data := fetch(t, "")
		assert.Len(t, data.Transactions, 10)
		assert.Equal(t, 1, data.Meta.Page)
		assert.Equal(t, 10, data.Meta.Limit)
	})

	t.Run("bad query values coerce to defaults", func(t *testing.T) {
		data := fetch(t, "?page=zero&limit=-4")
		assert.Equal(t, 1, data.Meta.Page)
		assert.Equal(t, 10, data.Meta.Limit)
	})

	t.Run("pages partition the set", func(t *testing.T) {
		seen := map[string]bool{}
		for page := 1; page <= 2; page++ {
			data := fetch(t, fmt.Sprintf("?page=%d&limit=10", page))
			for _, tx := range data.Transactions {
				assert.False(t, seen[tx.ID])
				seen[tx.ID] = true
			}
		}
		assert.Len(t, seen, 12)
	})
}
