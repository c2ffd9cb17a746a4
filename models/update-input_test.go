package models

import (
	"encoding/json"
	"testing"
)

func TestUpdateSubmissionInputThreeStates(t *testing.T) {
	var input UpdateSubmissionInput
	if err := json.Unmarshal([]byte(`{"response": null, "responseUrl": ""}`), &input); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if input.Status.Set {
		t.Error("Expected absent status to stay unset")
	}
	if !input.Response.Set || input.Response.Valid {
		t.Error("Expected explicit null response: set but not valid")
	}
	if !input.ResponseURL.Set || !input.ResponseURL.Valid || input.ResponseURL.Value != "" {
		t.Error("Expected empty-string responseUrl: set, valid, empty")
	}
}

func TestHasStatus(t *testing.T) {
	cases := []struct {
		name string
		body string
		want bool
	}{
		{"absent", `{}`, false},
		{"null", `{"status": null}`, false},
		{"empty", `{"status": ""}`, false},
		{"value", `{"status": "completed"}`, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var input UpdateSubmissionInput
			if err := json.Unmarshal([]byte(tc.body), &input); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if input.HasStatus() != tc.want {
				t.Errorf("HasStatus() = %v, want %v", input.HasStatus(), tc.want)
			}
		})
	}
}

func TestApply(t *testing.T) {
	response := "old notes"
	submission := Submission{
		Status:   StatusPending,
		Response: &response,
	}

	var input UpdateSubmissionInput
	body := `{"status": "", "response": null, "responseUrl": "https://cdn.example.com/v1.png"}`
	if err := json.Unmarshal([]byte(body), &input); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	input.Apply(&submission)

	if submission.Status != StatusPending {
		t.Errorf("Expected empty status ignored, got %q", submission.Status)
	}
	if submission.Response != nil {
		t.Errorf("Expected response cleared, got %q", *submission.Response)
	}
	if submission.ResponseURL == nil || *submission.ResponseURL != "https://cdn.example.com/v1.png" {
		t.Error("Expected responseUrl written")
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range []string{StatusPending, StatusCompleted, StatusRejected} {
		if !IsValidStatus(status) {
			t.Errorf("Expected %q to be valid", status)
		}
	}
	for _, status := range []string{"", "archived", "Pending", "done"} {
		if IsValidStatus(status) {
			t.Errorf("Expected %q to be invalid", status)
		}
	}
}
