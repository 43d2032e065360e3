package handler

import (
	"net/http"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func createTestNewsletterHandler(t *testing.T) (*NewsletterHandler, *mockUsecase.MockNewsletterUsecase) {
	uc := mockUsecase.NewMockNewsletterUsecase(t)

	return NewNewsletterHandler(NewsletterHandlerParams{NewsletterUC: uc, Logger: newDiscardLogger()}), uc
}

func TestNewsletterHandler_Subscribe_QueuedLocally(t *testing.T) {
	h, uc := createTestNewsletterHandler(t)

	uc.EXPECT().Subscribe(mock.Anything, "reader@example.com").
		Return(&usecase.SubscribeOutput{Email: "reader@example.com", QueuedLocally: true}, nil)

	rec := serve(http.MethodPost, "/newsletter", "/newsletter", `{"email":"reader@example.com"}`, h.Subscribe)

	var out SubscribeResponse
	decodeEnvelope(t, rec, &out)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, out.QueuedLocally)
	assert.JSONEq(t, `{"email":"reader@example.com","queued_locally":true}`, extractData(t, rec))
}

func TestNewsletterHandler_Subscribe_EmptyEmail(t *testing.T) {
	h, uc := createTestNewsletterHandler(t)

	uc.EXPECT().Subscribe(mock.Anything, "").Return(nil, domainerrors.ErrEmailRequired)

	rec := serve(http.MethodPost, "/newsletter", "/newsletter", `{}`, h.Subscribe)

	env := decodeEnvelope(t, rec, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "EMAIL_REQUIRED", env.Error.Code)
}

func TestNewsletterHandler_Subscribe_InvalidEmail(t *testing.T) {
	h, uc := createTestNewsletterHandler(t)

	uc.EXPECT().Subscribe(mock.Anything, "nope").Return(nil, domainerrors.ErrValidationFailed.WithDetails("invalid email"))

	rec := serve(http.MethodPost, "/newsletter", "/newsletter", `{"email":"nope"}`, h.Subscribe)

	env := decodeEnvelope(t, rec, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestNewsletterHandler_Flush(t *testing.T) {
	h, uc := createTestNewsletterHandler(t)

	uc.EXPECT().Flush(mock.Anything).Return(3, nil)

	rec := serve(http.MethodPost, "/newsletter/flush", "/newsletter/flush", "", h.Flush)

	var out FlushResponse
	decodeEnvelope(t, rec, &out)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, out.Delivered)
}

func TestNewsletterHandler_Flush_Failure(t *testing.T) {
	h, uc := createTestNewsletterHandler(t)

	uc.EXPECT().Flush(mock.Anything).Return(0, errors.New("bucket offline"))

	rec := serve(http.MethodPost, "/newsletter/flush", "/newsletter/flush", "", h.Flush)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
