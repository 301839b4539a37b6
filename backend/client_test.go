package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"supplydesk/config"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func testConfig() config.Config {
	return config.Config{
		BackendBaseURL:   "https://example.test/api",
		BackendTimeoutMs: 5000,
		BackendRetryMax:  3,
		BackendRateRPS:   1000,
	}
}

func newTestClient(token string, rt roundTripFunc) *Client {
	client := NewClient(testConfig(), func(context.Context) string { return token })
	client.httpClient = &http.Client{Transport: rt}
	return client
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func TestListSuppliers_AuthAndPagination(t *testing.T) {
	client := newTestClient("tok-1", func(r *http.Request) (*http.Response, error) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("expected bearer token header, got %q", got)
		}
		if r.URL.Path != "/api/suppliers/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("page") != "2" || q.Get("limit") != "10" || q.Get("search") != "acme" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		return jsonResponse(http.StatusOK, `{"count":23,"results":[{"id":"1","name":"Acme Traders"}]}`), nil
	})

	page, err := client.ListSuppliers(context.Background(), 2, 10, "acme")
	if err != nil {
		t.Fatal(err)
	}
	if page.Total != 23 {
		t.Errorf("expected total 23, got %d", page.Total)
	}
	if len(page.Results) != 1 || page.Results[0].Name != "Acme Traders" {
		t.Errorf("unexpected results: %+v", page.Results)
	}
}

func TestGet_RetriesOnServerError(t *testing.T) {
	attempt := 0
	client := newTestClient("tok", func(r *http.Request) (*http.Response, error) {
		attempt++
		if attempt == 1 {
			return jsonResponse(http.StatusInternalServerError, `{"error":"boom"}`), nil
		}
		return jsonResponse(http.StatusOK, `{"count":0,"results":[]}`), nil
	})

	if _, err := client.ListSuppliers(context.Background(), 1, 10, ""); err != nil {
		t.Fatal(err)
	}
	if attempt != 2 {
		t.Errorf("expected 2 attempts, got %d", attempt)
	}
}

func TestGet_NoRetryOnClientError(t *testing.T) {
	attempt := 0
	client := newTestClient("tok", func(r *http.Request) (*http.Response, error) {
		attempt++
		return jsonResponse(http.StatusNotFound, `{"detail":"not found"}`), nil
	})

	_, err := client.GetSupplier(context.Background(), "99")
	if err == nil {
		t.Fatal("expected error for 404")
	}
	if attempt != 1 {
		t.Errorf("expected a single attempt for 404, got %d", attempt)
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusNotFound {
		t.Errorf("expected APIError with status 404, got %v", err)
	}
}

func TestSend_MutationsNeverRetried(t *testing.T) {
	attempt := 0
	client := newTestClient("tok", func(r *http.Request) (*http.Response, error) {
		attempt++
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		return jsonResponse(http.StatusBadGateway, `{"error":"down"}`), nil
	})

	_, err := client.CreateSupplier(context.Background(), SupplierInput{Name: "Acme"})
	if err == nil {
		t.Fatal("expected error")
	}
	if attempt != 1 {
		t.Errorf("expected exactly one attempt for a mutation, got %d", attempt)
	}
}

func TestCreateQuotation_PayloadShape(t *testing.T) {
	var captured QuotationPayload
	client := newTestClient("tok", func(r *http.Request) (*http.Response, error) {
		if r.URL.Path != "/api/quotations/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected JSON content type, got %q", ct)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &captured); err != nil {
			t.Fatalf("request body is not valid JSON: %v", err)
		}
		return jsonResponse(http.StatusCreated, `{"id":"q-1","created_at":"2026-08-30"}`), nil
	})

	payload := QuotationPayload{
		SupplierID:  "42",
		TotalAmount: "25.50",
		Title:       "August order",
		Currency:    "USD",
		Items: []QuotationItemPayload{
			{ProductID: "7", UnitPrice: "10.00", TotalAmount: "10.00"},
		},
	}
	created, err := client.CreateQuotation(context.Background(), payload)
	if err != nil {
		t.Fatal(err)
	}
	if created.ID != "q-1" {
		t.Errorf("expected created id q-1, got %q", created.ID)
	}
	if captured.SupplierID != "42" || captured.TotalAmount != "25.50" {
		t.Errorf("unexpected payload: %+v", captured)
	}
	if len(captured.Items) != 1 || captured.Items[0].ProductID.String() != "7" {
		t.Errorf("unexpected payload items: %+v", captured.Items)
	}
}

func TestLogin_NoAuthHeaderAndTokenRequired(t *testing.T) {
	client := newTestClient("", func(r *http.Request) (*http.Response, error) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("login must run unauthenticated, got header %q", got)
		}
		return jsonResponse(http.StatusOK, `{"token":"fresh-token"}`), nil
	})

	token, err := client.Login(context.Background(), "buyer", "secret")
	if err != nil {
		t.Fatal(err)
	}
	if token != "fresh-token" {
		t.Errorf("expected fresh-token, got %q", token)
	}
}

func TestLogin_EmptyTokenIsError(t *testing.T) {
	client := newTestClient("", func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{}`), nil
	})
	if _, err := client.Login(context.Background(), "buyer", "secret"); err == nil {
		t.Fatal("expected error for login response without token")
	}
}

func TestSupplierWiseProducts_DecodesCatalog(t *testing.T) {
	client := newTestClient("tok", func(r *http.Request) (*http.Response, error) {
		if r.URL.Path != "/api/custom-quotation/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		return jsonResponse(http.StatusOK, `{"Acme Traders":[{"id":7,"name":"Rice 5kg","retail_price":"10.00","supplier":"42"}]}`), nil
	})

	catalog, err := client.SupplierWiseProducts(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	offerings := catalog["Acme Traders"]
	if len(offerings) != 1 {
		t.Fatalf("expected 1 offering, got %d", len(offerings))
	}
	if offerings[0].ID.String() != "7" {
		t.Errorf("expected numeric id decoded as 7, got %q", offerings[0].ID.String())
	}
}

func TestUploadSupplierList_MultipartKey(t *testing.T) {
	client := newTestClient("tok", func(r *http.Request) (*http.Response, error) {
		if r.URL.Path != "/api/supplier-list-upload/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("expected multipart body: %v", err)
		}
		file, header, err := r.FormFile("supplier_list")
		if err != nil {
			t.Fatalf("expected file under supplier_list key: %v", err)
		}
		defer file.Close()
		if header.Filename != "list.csv" {
			t.Errorf("expected filename list.csv, got %q", header.Filename)
		}
		content, _ := io.ReadAll(file)
		if string(content) != "a,b\n1,2\n" {
			t.Errorf("unexpected file content %q", content)
		}
		return jsonResponse(http.StatusOK, `{"message":"ok","imported":1,"skipped":0}`), nil
	})

	result, err := client.UploadSupplierList(context.Background(), "list.csv", strings.NewReader("a,b\n1,2\n"))
	if err != nil {
		t.Fatal(err)
	}
	if result.Imported != 1 {
		t.Errorf("expected 1 imported, got %d", result.Imported)
	}
}

func TestIsUnauthorized(t *testing.T) {
	client := newTestClient("expired", func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusUnauthorized, `{"detail":"token expired"}`), nil
	})

	_, err := client.GetSupplier(context.Background(), "1")
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsUnauthorized(err) {
		t.Errorf("expected IsUnauthorized for 401, got %v", err)
	}
}

func TestUserMessage_BackendMessageWins(t *testing.T) {
	client := newTestClient("tok", func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadRequest, `{"message":"Supplier name already exists"}`), nil
	})

	_, err := client.CreateSupplier(context.Background(), SupplierInput{Name: "Acme"})
	if got := UserMessage(err); got != "Supplier name already exists" {
		t.Errorf("expected backend message, got %q", got)
	}
}
