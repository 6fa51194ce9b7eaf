package betaface

import (
	"context"
	"net/http"
	"path/filepath"
	"slices"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestUploadBatch_MixedFaces(t *testing.T) {
	twoFaces := loadTestData(t, "media_file_two_faces.json")
	noFaces := loadTestData(t, "media_file_no_faces.json")

	api := &mockAPI{uploadHandler: func(_ int, filename string) (int, []byte) {
		if filename == "a.png" {
			return http.StatusOK, twoFaces
		}
		return http.StatusOK, noFaces
	}}
	server := api.server(t)
	client := newTestClient(t, server)

	dir := t.TempDir()
	paths := []string{writeTestImage(t, dir, "a.png"), writeTestImage(t, dir, "b.png")}

	var seen []int
	results := client.UploadBatch(context.Background(), paths, []string{"gender"}, func(i int, r BatchResult) {
		seen = append(seen, i)
		if r.ImagePath != paths[i] {
			t.Errorf("callback %d: expected path '%s', got '%s'", i, paths[i], r.ImagePath)
		}
	})

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	if !slices.Equal(seen, []int{0, 1}) {
		t.Errorf("expected callbacks for 0 and 1 in order, got %v", seen)
	}

	a := results[0]
	if !a.OK() || a.ImagePath != paths[0] {
		t.Fatalf("expected first result to succeed for '%s', got %+v", paths[0], a)
	}
	if a.IDs.MediaUUID != "9f2b1d6e-6c2a-4a63-9c1e-2a0b3f1d7c01" || len(a.IDs.FaceUUIDs) != 2 {
		t.Errorf("unexpected ids for image A: %+v", a.IDs)
	}
	if len(a.Response) == 0 {
		t.Error("expected raw response to be kept")
	}

	b := results[1]
	if !b.OK() {
		t.Fatalf("expected second result to succeed, got %v", b.Err)
	}
	if b.IDs.MediaUUID != "4a8e2c1f-9b3d-4e7a-8c6f-1d2e3f4a5b02" || len(b.IDs.FaceUUIDs) != 0 {
		t.Errorf("unexpected ids for image B: %+v", b.IDs)
	}
}

func TestUploadBatch_ContinuesAfterFailure(t *testing.T) {
	noFaces := loadTestData(t, "media_file_no_faces.json")

	api := &mockAPI{uploadHandler: func(_ int, filename string) (int, []byte) {
		if filename == "c.png" {
			return http.StatusInternalServerError, []byte(`{"error":"boom"}`)
		}
		return http.StatusOK, noFaces
	}}
	server := api.server(t)
	client := newTestClient(t, server)

	dir := t.TempDir()
	paths := []string{
		writeTestImage(t, dir, "c.png"),
		filepath.Join(dir, "missing.jpg"),
		writeTestImage(t, dir, "d.png"),
	}

	results := client.UploadBatch(context.Background(), paths, nil, nil)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	for i, r := range results {
		if r.ImagePath != paths[i] {
			t.Errorf("result %d: expected path '%s', got '%s'", i, paths[i], r.ImagePath)
		}
	}

	if results[0].OK() || results[0].Response != nil || results[0].IDs != nil {
		t.Errorf("expected image C to fail with no response and no ids, got %+v", results[0])
	}
	if !IsKind(results[0].Err, KindStatus) {
		t.Errorf("expected status error for image C, got %v", results[0].Err)
	}

	if !IsKind(results[1].Err, KindFile) {
		t.Errorf("expected file error for missing image, got %v", results[1].Err)
	}

	if !results[2].OK() {
		t.Errorf("expected image D to succeed after failures, got %v", results[2].Err)
	}
}

func TestUploadBatch_AllFail(t *testing.T) {
	api := &mockAPI{uploadHandler: func(int, string) (int, []byte) {
		return http.StatusServiceUnavailable, []byte(`unavailable`)
	}}
	server := api.server(t)
	client := newTestClient(t, server)

	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"1.png", "2.png", "3.png", "4.png"} {
		paths = append(paths, writeTestImage(t, dir, name))
	}

	results := client.UploadBatch(context.Background(), paths, nil, nil)

	if len(results) != len(paths) {
		t.Fatalf("expected %d results, got %d", len(paths), len(results))
	}
	for i, r := range results {
		if r.OK() || r.ImagePath != paths[i] {
			t.Errorf("result %d: expected failure for '%s', got %+v", i, paths[i], r)
		}
	}
}

func TestUploadBatch_Empty(t *testing.T) {
	client, err := New("http://127.0.0.1:1/api", testAPIKey)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	results := client.UploadBatch(context.Background(), nil, nil, nil)
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestUploadBatch_LogsPerImage(t *testing.T) {
	api := &mockAPI{uploadHandler: func(int, string) (int, []byte) {
		return http.StatusOK, []byte(`{"media":{"media_uuid":"m1"}}`)
	}}
	server := api.server(t)

	core, logs := observer.New(zapcore.DebugLevel)
	client := newTestClient(t, server, WithLogger(zap.New(core)))

	client.UploadBatch(context.Background(), []string{writeTestImage(t, t.TempDir(), "x.png")}, nil, nil)

	if logs.FilterMessage("uploading image").Len() != 1 {
		t.Error("expected an 'uploading image' entry")
	}

	if logs.FilterMessage("image uploaded, no faces detected").Len() != 1 {
		t.Error("expected a no-faces summary entry")
	}

	shape := logs.FilterMessage("unexpected upload response shape").All()
	if len(shape) != 1 {
		t.Fatalf("expected one shape diagnostic, got %d", len(shape))
	}
	if shape[0].ContextMap()["problem"] != "media section has no faces list" {
		t.Errorf("unexpected problem %v", shape[0].ContextMap()["problem"])
	}

	status := logs.FilterMessage("response received").All()
	if len(status) != 1 || status[0].ContextMap()["status"] != int64(http.StatusOK) {
		t.Errorf("expected response status to be logged, got %v", status)
	}
}
