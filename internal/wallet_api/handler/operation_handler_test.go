package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chari-wallet-mock/internal/domain/operation"
	"github.com/chari-wallet-mock/internal/pagination"
)

func sampleOperation(id int) operation.Operation {
	sender := "+212600000002"
	receiver := "+212600000001"
	beneficiary := "Transfer from +212600000002"
	return operation.Operation{
		OperationID:          id,
		OperationType:        operation.TypeCodeTransfer,
		TransactionReference: "T0303-24052009-25",
		Amount:               decimal.NewFromInt(150),
		FeesAmount:           decimal.Zero,
		TotalAmount:          decimal.NewFromInt(150),
		Currency:             "MAD",
		Date:                 time.Date(2024, 5, 20, 9, 15, 0, 0, time.UTC),
		TransactionStatus:    operation.StatusCodeCompleted,
		Sens:                 operation.SensCredit,
		Sender:               &sender,
		Receiver:             &receiver,
		Beneficiary:          &beneficiary,
	}
}

func TestOperationHandler_List(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	gin.SetMode(gin.TestMode)

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockTransactionService)
		handler := NewOperationHandler(logger, mockService)

		ops := []operation.Operation{sampleOperation(1), sampleOperation(2)}
		meta := pagination.Meta{Total: 25, Limit: 2, Offset: 0, Page: 1, TotalPages: 13, HasMore: true}
		mockService.On("ListOperations", mock.Anything, "+212600000001",
			pagination.Query{Limit: "2", Offset: "", Page: ""}, (*int)(nil), (*int)(nil)).Return(ops, meta, nil)

		router := gin.Default()
		router.GET("/operations", handler.List)

		req, _ := http.NewRequest(http.MethodGet, "/operations?phoneNumber=%2B212600000001&pageSize=2", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		data := dataField(t, rr)
		items, ok := data["operations"].([]interface{})
		require.True(t, ok)
		require.Len(t, items, 2)

		first := items[0].(map[string]interface{})
		assert.Equal(t, float64(1), first["operationId"])
		assert.Equal(t, float64(operation.TypeCodeTransfer), first["operationType"])
		assert.Equal(t, "T0303-24052009-25", first["transactionReference"])
		assert.Equal(t, float64(operation.SensCredit), first["sens"])
		assert.Equal(t, "+212600000002", first["sender"])
		assert.Equal(t, "+212600000001", first["receiver"])

		mockService.AssertExpectations(t)
	})

	t.Run("NullCounterpartiesStayNull", func(t *testing.T) {
		mockService := new(MockTransactionService)
		handler := NewOperationHandler(logger, mockService)

		op := sampleOperation(1)
		op.Sender = nil
		op.Receiver = nil
		op.Beneficiary = nil
		mockService.On("ListOperations", mock.Anything, "+212600000001", mock.Anything, (*int)(nil), (*int)(nil)).
			Return([]operation.Operation{op}, pagination.Meta{Total: 1, Limit: 10, Page: 1, TotalPages: 1}, nil)

		router := gin.Default()
		router.GET("/operations", handler.List)

		req, _ := http.NewRequest(http.MethodGet, "/operations?phoneNumber=%2B212600000001", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		data := dataField(t, rr)
		items := data["operations"].([]interface{})
		first := items[0].(map[string]interface{})

		// The keys must exist with explicit nulls, not be omitted.
		sender, exists := first["sender"]
		assert.True(t, exists)
		assert.Nil(t, sender)
		receiver, exists := first["receiver"]
		assert.True(t, exists)
		assert.Nil(t, receiver)

		mockService.AssertExpectations(t)
	})

	t.Run("NumericFiltersAreParsed", func(t *testing.T) {
		mockService := new(MockTransactionService)
		handler := NewOperationHandler(logger, mockService)

		expectedType := operation.TypeCodeTransfer
		expectedStatus := operation.StatusCodeCompleted
		mockService.On("ListOperations", mock.Anything, "+212600000001", mock.Anything,
			mock.MatchedBy(func(code *int) bool { return code != nil && *code == expectedType }),
			mock.MatchedBy(func(code *int) bool { return code != nil && *code == expectedStatus }),
		).Return([]operation.Operation{}, pagination.Meta{Limit: 10, Page: 1}, nil)

		router := gin.Default()
		router.GET("/operations", handler.List)

		req, _ := http.NewRequest(http.MethodGet, "/operations?phoneNumber=%2B212600000001&operationType=3&transactionStatus=2", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("NonNumericTypeFilter", func(t *testing.T) {
		mockService := new(MockTransactionService)
		handler := NewOperationHandler(logger, mockService)
		router := gin.Default()
		router.GET("/operations", handler.List)

		req, _ := http.NewRequest(http.MethodGet, "/operations?phoneNumber=%2B212600000001&operationType=TRANSFER", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "operationType must be numeric", body["errorDescription"])
		mockService.AssertExpectations(t)
	})

	t.Run("MissingPhoneNumber", func(t *testing.T) {
		mockService := new(MockTransactionService)
		handler := NewOperationHandler(logger, mockService)
		router := gin.Default()
		router.GET("/operations", handler.List)

		req, _ := http.NewRequest(http.MethodGet, "/operations", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertExpectations(t)
	})
}

func TestOperationHandler_GetByID(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	gin.SetMode(gin.TestMode)

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockTransactionService)
		handler := NewOperationHandler(logger, mockService)

		op := sampleOperation(5)
		mockService.On("GetOperation", mock.Anything, "+212600000001", 5).Return(&op, nil)

		router := gin.Default()
		router.GET("/operations/:id", handler.GetByID)

		req, _ := http.NewRequest(http.MethodGet, "/operations/5?phoneNumber=%2B212600000001", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		data := dataField(t, rr)
		assert.Equal(t, float64(5), data["operationId"])
		mockService.AssertExpectations(t)
	})

	t.Run("NonNumericID", func(t *testing.T) {
		mockService := new(MockTransactionService)
		handler := NewOperationHandler(logger, mockService)
		router := gin.Default()
		router.GET("/operations/:id", handler.GetByID)

		req, _ := http.NewRequest(http.MethodGet, "/operations/abc?phoneNumber=%2B212600000001", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("ZeroID", func(t *testing.T) {
		mockService := new(MockTransactionService)
		handler := NewOperationHandler(logger, mockService)
		router := gin.Default()
		router.GET("/operations/:id", handler.GetByID)

		req, _ := http.NewRequest(http.MethodGet, "/operations/0?phoneNumber=%2B212600000001", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("UnknownOperation", func(t *testing.T) {
		mockService := new(MockTransactionService)
		handler := NewOperationHandler(logger, mockService)
		mockService.On("GetOperation", mock.Anything, "+212600000001", 99).
			Return(nil, operation.ErrNotFound{ID: 99})

		router := gin.Default()
		router.GET("/operations/:id", handler.GetByID)

		req, _ := http.NewRequest(http.MethodGet, "/operations/99?phoneNumber=%2B212600000001", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "Operation not found", body["errorDescription"])
		mockService.AssertExpectations(t)
	})
}
