package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"success": status < 300,
		"message": message,
		"data":    data,
	})
}

func TestLoginStoresToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["username"] != "rajesh" || body["password"] != "password123" {
			respond(w, http.StatusUnauthorized, "Invalid credentials.", nil)
			return
		}

		respond(w, http.StatusOK, "Login successful!", map[string]any{
			"user":  map[string]any{"id": 1, "username": "rajesh", "role": "student"},
			"token": "issued-token",
		})
	}))
	defer server.Close()

	client := New(server.URL + "/api/v1")

	result, err := client.Login(context.Background(), "rajesh", "password123", "")
	require.NoError(t, err)
	require.NotNil(t, result.User)
	assert.Equal(t, "rajesh", result.User.Username)
	assert.Equal(t, "issued-token", client.token)
}

func TestLoginError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusUnauthorized, "Invalid credentials.", nil)
	}))
	defer server.Close()

	client := New(server.URL + "/api/v1")

	_, err := client.Login(context.Background(), "rajesh", "wrong", "")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid credentials.", apiErr.Message)
}

func TestFeesQueryParameters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/fees/19BD1A05J1", r.URL.Path)
		require.Equal(t, "false", r.URL.Query().Get("paid"))
		require.Equal(t, "Lab Fee", r.URL.Query().Get("feeType"))

		respond(w, http.StatusOK, "Fees retrieved successfully", []map[string]any{
			{"id": 2, "student_id": "19BD1A05J1", "fee_type": "Lab Fee", "amount": 7000, "due_date": "2025-01-31", "paid": false},
		})
	}))
	defer server.Close()

	client := New(server.URL + "/api/v1")

	paid := false
	fees, err := client.Fees(context.Background(), "19BD1A05J1", "Lab Fee", &paid)
	require.NoError(t, err)
	require.Len(t, fees, 1)
	assert.Equal(t, "Lab Fee", fees[0].FeeType)
	assert.False(t, fees[0].Paid)
}

func TestPayFee(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/pay-fee/2", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "TXN42", body["transactionId"])

		respond(w, http.StatusOK, "Fee payment recorded successfully!", nil)
	}))
	defer server.Close()

	client := New(server.URL + "/api/v1")
	assert.NoError(t, client.PayFee(context.Background(), 2, "TXN42"))
}

func TestAuthorizationHeaderAttached(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer my-token", r.Header.Get("Authorization"))
		respond(w, http.StatusOK, "Profile retrieved successfully", map[string]any{
			"id": 1, "username": "rajesh",
		})
	}))
	defer server.Close()

	client := New(server.URL+"/api/v1", WithToken("my-token"))

	user, err := client.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "rajesh", user.Username)
}

func TestParentDashboardDecoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/parent-dashboard/19BD1A05J1", r.URL.Path)
		respond(w, http.StatusOK, "Parent dashboard retrieved successfully", map[string]any{
			"student":          map[string]any{"id": 1, "name": "Rajesh Kumar", "hallticketnumber": "19BD1A05J1", "branch": "CSE"},
			"latestAttendance": map[string]any{"month": "February 2025", "percentage": 90},
			"unpaidFeesCount":  2,
			"subjectMarks": []map[string]any{
				{"subject": "Machine Learning", "marks": 27, "max_marks": 30},
			},
		})
	}))
	defer server.Close()

	client := New(server.URL + "/api/v1")

	dashboard, err := client.ParentDashboard(context.Background(), "19BD1A05J1")
	require.NoError(t, err)
	require.NotNil(t, dashboard.Student)
	assert.Equal(t, "Rajesh Kumar", dashboard.Student.Name)
	assert.Equal(t, 2, dashboard.UnpaidFeesCount)
	require.Len(t, dashboard.SubjectMarks, 1)
	assert.Equal(t, 27, dashboard.SubjectMarks[0].Marks)
}

func TestNonJSONErrorResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer server.Close()

	client := New(server.URL + "/api/v1")

	_, err := client.Notifications(context.Background(), "", "")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
}
