package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/shelfmates/shelfmates/shared/domain"
	"github.com/shelfmates/shelfmates/shared/errors"
)

// MockMessagingService implements service.MessagingService.
type MockMessagingService struct {
	MockSend         func(data domain.MessageCreationData) (domain.MessageId, error)
	MockDelete       func(requestor domain.UserId, id domain.MessageId) error
	MockMessage      func(id domain.MessageId) (domain.DirectMessage, bool, error)
	MockConversation func(a, b domain.UserId) ([]domain.DirectMessage, error)
}

func (m *MockMessagingService) Send(data domain.MessageCreationData) (domain.MessageId, error) {
	if m.MockSend != nil {
		return m.MockSend(data)
	}
	return "", nil
}

func (m *MockMessagingService) Delete(requestor domain.UserId, id domain.MessageId) error {
	if m.MockDelete != nil {
		return m.MockDelete(requestor, id)
	}
	return nil
}

func (m *MockMessagingService) Message(id domain.MessageId) (domain.DirectMessage, bool, error) {
	if m.MockMessage != nil {
		return m.MockMessage(id)
	}
	return domain.DirectMessage{}, false, nil
}

func (m *MockMessagingService) Conversation(a, b domain.UserId) ([]domain.DirectMessage, error) {
	if m.MockConversation != nil {
		return m.MockConversation(a, b)
	}
	return nil, nil
}

func setupMessagingTestHandler(messaging *MockMessagingService) *mux.Router {
	h := &Handler{messaging: messaging}
	router := mux.NewRouter()
	router.HandleFunc("/messages", h.CreateMessage).Methods(http.MethodPost)
	router.HandleFunc("/messages", h.GetConversation).Methods(http.MethodGet)
	router.HandleFunc("/messages/{message}", h.GetMessage).Methods(http.MethodGet)
	router.HandleFunc("/messages/{message}", h.DeleteMessage).Methods(http.MethodDelete)
	return router
}

func TestCreateMessageHandler(t *testing.T) {
	t.Run("successful request", func(t *testing.T) {
		mockService := &MockMessagingService{
			MockSend: func(data domain.MessageCreationData) (domain.MessageId, error) {
				assert.Equal(t, domain.UserId("alice"), data.Sender)
				assert.Equal(t, domain.UserId("bob"), data.Recipient)
				assert.Equal(t, "hi bob", data.Body)
				return "msg1", nil
			},
		}
		router := setupMessagingTestHandler(mockService)

		body := []byte(`{"sender": "alice", "recipient": "bob", "body": "hi bob"}`)
		req := httptest.NewRequest(http.MethodPost, "/messages", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.JSONEq(t, `{"id": "msg1"}`, rr.Body.String())
	})

	t.Run("self send rejected", func(t *testing.T) {
		mockService := &MockMessagingService{
			MockSend: func(data domain.MessageCreationData) (domain.MessageId, error) {
				return "", errors.BadRequest("Cannot message yourself")
			},
		}
		router := setupMessagingTestHandler(mockService)

		body := []byte(`{"sender": "alice", "recipient": "alice", "body": "hello me"}`)
		req := httptest.NewRequest(http.MethodPost, "/messages", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDeleteMessageHandler(t *testing.T) {
	t.Run("sender deletes own message", func(t *testing.T) {
		mockService := &MockMessagingService{
			MockDelete: func(requestor domain.UserId, id domain.MessageId) error {
				assert.Equal(t, domain.UserId("alice"), requestor)
				assert.Equal(t, domain.MessageId("msg1"), id)
				return nil
			},
		}
		router := setupMessagingTestHandler(mockService)

		req := httptest.NewRequest(http.MethodDelete, "/messages/msg1?requestor=alice", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status": "deleted"}`, rr.Body.String())
	})

	t.Run("recipient cannot delete", func(t *testing.T) {
		mockService := &MockMessagingService{
			MockDelete: func(requestor domain.UserId, id domain.MessageId) error {
				return errors.Forbidden("Only the sender can delete a message")
			},
		}
		router := setupMessagingTestHandler(mockService)

		req := httptest.NewRequest(http.MethodDelete, "/messages/msg1?requestor=bob", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestGetConversationHandler(t *testing.T) {
	t.Run("successful request", func(t *testing.T) {
		mockService := &MockMessagingService{
			MockConversation: func(a, b domain.UserId) ([]domain.DirectMessage, error) {
				assert.Equal(t, domain.UserId("alice"), a)
				assert.Equal(t, domain.UserId("bob"), b)
				return []domain.DirectMessage{{Id: "m1", Body: "first"}, {Id: "m2", Body: "second"}}, nil
			},
		}
		router := setupMessagingTestHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/messages?user=alice&with=bob", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "first")
		assert.Contains(t, rr.Body.String(), "second")
	})

	t.Run("missing query params", func(t *testing.T) {
		router := setupMessagingTestHandler(&MockMessagingService{})

		req := httptest.NewRequest(http.MethodGet, "/messages?user=alice", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
