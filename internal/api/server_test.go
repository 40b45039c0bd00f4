package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"replylag/internal/processor"
	"replylag/internal/sheet"
)

func testServer() *Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	proc := processor.New(sheet.Columns{}, logger)
	return NewServer(8080, 10<<20, proc, logger)
}

func fixtureWorkbook(t *testing.T, rows [][]string) []byte {
	t.Helper()
	f := excelize.NewFile()
	name := f.GetSheetName(0)
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue(name, cell, v); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("serialize fixture: %v", err)
	}
	return buf.Bytes()
}

func uploadRequest(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	req := httptest.NewRequest("POST", "/process", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHealthEndpoint(t *testing.T) {
	srv := testServer()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %q", body["status"])
	}
}

func TestUploadForm(t *testing.T) {
	srv := testServer()

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `action="/process"`) {
		t.Error("upload form missing from response")
	}
}

func TestProcessEndpoint(t *testing.T) {
	srv := testServer()

	wb := fixtureWorkbook(t, [][]string{
		{"Direction", "Session Time"},
		{"Received", "2026/03/02 09:00"},
		{"Sent", "2026/03/02 09:05"},
	})
	req := uploadRequest(t, "log.xlsx", wb)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Content-Disposition"); !strings.Contains(got, "processed_log.xlsx") {
		t.Errorf("unexpected content disposition %q", got)
	}
	if w.Header().Get("X-Job-ID") == "" {
		t.Error("expected a job id header")
	}

	out, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("response is not a workbook: %v", err)
	}
	defer out.Close()
	name := out.GetSheetName(0)
	if got, _ := out.GetCellValue(name, "C2"); got != "5" {
		t.Errorf("expected duration 5 in returned workbook, got %q", got)
	}
}

func TestProcessEndpoint_WrongExtension(t *testing.T) {
	srv := testServer()

	req := uploadRequest(t, "log.csv", []byte("a,b\n1,2\n"))
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), ".xlsx") {
		t.Error("expected the form to explain the extension requirement")
	}
}

func TestProcessEndpoint_NoFile(t *testing.T) {
	srv := testServer()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	mw.Close()
	req := httptest.NewRequest("POST", "/process", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestProcessEndpoint_StructuralErrorShownOnForm(t *testing.T) {
	srv := testServer()

	wb := fixtureWorkbook(t, [][]string{
		{"Agent", "Message"},
		{"amy", "hello"},
	})
	req := uploadRequest(t, "log.xlsx", wb)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "columns not found") {
		t.Errorf("expected the structural error on the form, got: %s", w.Body.String())
	}
}

func TestNotFoundEndpoint(t *testing.T) {
	srv := testServer()

	req := httptest.NewRequest("GET", "/nonexistent", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
