// Copyright (c) 2026 Contascan
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apperr "contascan/cli/internal/errors"
	"contascan/cli/internal/models"
)

func testClient(t *testing.T, handler http.HandlerFunc) *HTTP {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return newHTTP(srv.URL, "", 10*time.Second)
}

func TestAnalyzeSuccess(t *testing.T) {
	var gotPrompt string
	var gotFiles []string

	h := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/analyze" {
			t.Errorf("path = %s, want /analyze", r.URL.Path)
		}
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Fatalf("ParseMultipartForm: %v", err)
		}
		gotPrompt = r.FormValue("prompt")
		for _, fh := range r.MultipartForm.File["files"] {
			gotFiles = append(gotFiles, fh.Filename)
		}
		json.NewEncoder(w).Encode(models.AnalysisResult{
			Summary:   "ok",
			SessionID: "abc",
			Findings: []models.Finding{
				{Type: models.FindingWarning, Severity: models.LevelMedium, Title: "Fila duplicada"},
			},
		})
	})

	files := []UploadFile{{Name: "report.xlsx", Content: []byte("PK\x03\x04fake")}}
	res, err := h.Analyze(context.Background(), files, "revisa los totales", nil)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if res.Summary != "ok" {
		t.Errorf("Summary = %q, want ok", res.Summary)
	}
	if res.SessionID != "abc" {
		t.Errorf("SessionID = %q, want abc", res.SessionID)
	}
	if !res.HasSession() {
		t.Error("HasSession() = false, want true")
	}
	if gotPrompt != "revisa los totales" {
		t.Errorf("prompt field = %q", gotPrompt)
	}
	if len(gotFiles) != 1 || gotFiles[0] != "report.xlsx" {
		t.Errorf("files field = %v, want [report.xlsx]", gotFiles)
	}
}

func TestAnalyzeEmptyPromptOmitted(t *testing.T) {
	h := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Fatalf("ParseMultipartForm: %v", err)
		}
		if vals, ok := r.MultipartForm.Value["prompt"]; ok {
			t.Errorf("prompt field present: %v, want absent", vals)
		}
		json.NewEncoder(w).Encode(models.AnalysisResult{Summary: "ok"})
	})

	_, err := h.Analyze(context.Background(), []UploadFile{{Name: "a.xlsx", Content: []byte("x")}}, "", nil)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
}

func TestAnalyzeNoFiles(t *testing.T) {
	h := newHTTP("http://localhost:0", "", time.Second)
	_, err := h.Analyze(context.Background(), nil, "", nil)
	if err == nil {
		t.Fatal("expected error for empty file list")
	}
	if apperr.KindOf(err) != apperr.Validation {
		t.Errorf("kind = %v, want validation", apperr.KindOf(err))
	}
}

func TestAnalyzeProgress(t *testing.T) {
	h := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseMultipartForm(32 << 20)
		json.NewEncoder(w).Encode(models.AnalysisResult{Summary: "ok"})
	})

	var last float64
	files := []UploadFile{{Name: "a.xlsx", Content: make([]byte, 64*1024)}}
	_, err := h.Analyze(context.Background(), files, "", func(frac float64) {
		if frac < last {
			t.Errorf("progress went backwards: %v after %v", frac, last)
		}
		if frac > 1 {
			t.Errorf("progress fraction %v > 1", frac)
		}
		last = frac
	})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if last != 1 {
		t.Errorf("final progress = %v, want 1", last)
	}
}

func TestServerDetailMessage(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{
			name:   "detail field",
			status: http.StatusInternalServerError,
			body:   `{"detail": "modelo no disponible"}`,
			want:   "modelo no disponible",
		},
		{
			name:   "error field",
			status: http.StatusBadRequest,
			body:   `{"error": "invalid sheet"}`,
			want:   "invalid sheet",
		},
		{
			name:   "no message field",
			status: http.StatusBadGateway,
			body:   `{"code": 42}`,
			want:   msgServerGeneric,
		},
		{
			name:   "non-JSON body",
			status: http.StatusInternalServerError,
			body:   "<html>boom</html>",
			want:   msgServerGeneric,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			_, err := h.Health(context.Background())
			if err == nil {
				t.Fatal("expected error")
			}
			if apperr.KindOf(err) != apperr.Server {
				t.Errorf("kind = %v, want server", apperr.KindOf(err))
			}
			if got := apperr.Message(err); got != tt.want {
				t.Errorf("message = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	h := newHTTP(url, "", time.Second)
	_, err := h.Health(context.Background())
	if err == nil {
		t.Fatal("expected error against closed server")
	}
	if apperr.KindOf(err) != apperr.Connection {
		t.Errorf("kind = %v, want connection", apperr.KindOf(err))
	}
	if got := apperr.Message(err); got != msgConnection {
		t.Errorf("message = %q, want %q", got, msgConnection)
	}
}

func TestSendChat(t *testing.T) {
	var gotBody map[string]string
	h := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat" {
			t.Errorf("path = %s, want /chat", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %s", ct)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]string{"response": "los totales cuadran"})
	})

	reply, err := h.SendChat(context.Background(), "abc", "¿cuadran los totales?")
	if err != nil {
		t.Fatalf("SendChat() error = %v", err)
	}
	if reply != "los totales cuadran" {
		t.Errorf("reply = %q", reply)
	}
	if gotBody["session_id"] != "abc" || gotBody["message"] != "¿cuadran los totales?" {
		t.Errorf("request body = %v", gotBody)
	}
}

func TestSendChatValidation(t *testing.T) {
	h := newHTTP("http://localhost:0", "", time.Second)

	if _, err := h.SendChat(context.Background(), "", "hola"); apperr.KindOf(err) != apperr.Validation {
		t.Errorf("empty session id: kind = %v, want validation", apperr.KindOf(err))
	}
	if _, err := h.SendChat(context.Background(), "abc", "   "); apperr.KindOf(err) != apperr.Validation {
		t.Errorf("blank message: kind = %v, want validation", apperr.KindOf(err))
	}
}

func TestDownloadSendsFullSheets(t *testing.T) {
	var got struct {
		Filename string         `json:"filename"`
		Sheets   []models.Sheet `json:"sheets"`
	}
	h := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/download" {
			t.Errorf("path = %s, want /download", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte("PK\x03\x04generated"))
	})

	sheets := []models.Sheet{{
		SheetName: "Ventas",
		Columns:   []string{"Producto", "Total"},
		Rows: []models.Row{
			{"Producto": "A", "Total": float64(9000)},
		},
		Shape:          [2]int{1, 2},
		NumericColumns: []string{"Total"},
	}}

	data, err := h.Download(context.Background(), "ventas.xlsx", sheets)
	if err != nil {
		t.Fatalf("Download() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "PK") {
		t.Errorf("payload = %q, want binary starting with PK", data[:2])
	}
	if got.Filename != "ventas.xlsx" {
		t.Errorf("filename = %q", got.Filename)
	}
	if len(got.Sheets) != 1 || got.Sheets[0].SheetName != "Ventas" {
		t.Fatalf("sheets = %+v", got.Sheets)
	}
	if v := got.Sheets[0].Rows[0]["Total"]; v != float64(9000) {
		t.Errorf("Total = %v, want 9000", v)
	}
}

func TestEditCell(t *testing.T) {
	var got map[string]any
	h := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/edit" {
			t.Errorf("path = %s, want /edit", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	if err := h.EditCell(context.Background(), "Ventas", 3, "Total", "9000"); err != nil {
		t.Fatalf("EditCell() error = %v", err)
	}
	if got["sheet_name"] != "Ventas" || got["row"] != float64(3) || got["column"] != "Total" || got["value"] != "9000" {
		t.Errorf("request body = %v", got)
	}
}

func TestExtractFillsFilename(t *testing.T) {
	h := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.StructuredWorkbook{
			Sheets: []models.Sheet{{SheetName: "Hoja1"}},
		})
	})

	wb, err := h.Extract(context.Background(), UploadFile{Name: "libro.xlsx", Content: []byte("x")})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if wb.Filename != "libro.xlsx" {
		t.Errorf("Filename = %q, want libro.xlsx (client fallback)", wb.Filename)
	}
}

func TestSessionLifecycle(t *testing.T) {
	h := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/sessions":
			json.NewEncoder(w).Encode(models.SessionList{
				Sessions: []models.SessionSummary{{SessionID: "abc", MessageCount: 2}},
				Total:    1,
			})
		case r.Method == http.MethodGet && r.URL.Path == "/sessions/abc":
			json.NewEncoder(w).Encode(models.SessionDetail{SessionID: "abc"})
		case r.Method == http.MethodDelete && r.URL.Path == "/sessions/abc":
			json.NewEncoder(w).Encode(map[string]string{"message": "session abc deleted"})
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})

	list, err := h.ListSessions(context.Background())
	if err != nil {
		t.Fatalf("ListSessions() error = %v", err)
	}
	if list.Total != 1 || len(list.Sessions) != 1 {
		t.Errorf("list = %+v", list)
	}

	detail, err := h.GetSession(context.Background(), "abc")
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if detail.SessionID != "abc" {
		t.Errorf("SessionID = %q", detail.SessionID)
	}

	msg, err := h.DeleteSession(context.Background(), "abc")
	if err != nil {
		t.Fatalf("DeleteSession() error = %v", err)
	}
	if msg != "session abc deleted" {
		t.Errorf("message = %q", msg)
	}
}

func TestBearerToken(t *testing.T) {
	var gotAuth string
	h := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(models.HealthStatus{Status: "healthy"})
	})
	h.token = "tok_42"

	if _, err := h.Health(context.Background()); err != nil {
		t.Fatalf("Health() error = %v", err)
	}
	if gotAuth != "Bearer tok_42" {
		t.Errorf("Authorization = %q", gotAuth)
	}
}
