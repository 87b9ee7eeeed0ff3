//
// Copyright (C) 2026 MultiModalDocSystem Authors. All rights reserved.
//
// MultiModalDocSystem is licensed under the Apache License Version 2.0.
//
//

package pipeline

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a processing task.
type Status string

const (
	// StatusPending marks a task that has not started yet.
	StatusPending Status = "pending"
	// StatusProcessing marks a task in progress.
	StatusProcessing Status = "processing"
	// StatusCompleted marks a task that finished successfully.
	StatusCompleted Status = "completed"
	// StatusFailed marks a task that stopped on an error.
	StatusFailed Status = "failed"
)

// Task records identity and progress for one file processing run.
type Task struct {
	// ID is the unique identifier of the task.
	ID string `json:"id"`

	// FileName names the file being processed.
	FileName string `json:"file_name"`

	// Status is the current lifecycle state.
	Status Status `json:"status"`

	// Message describes the current stage or the failure.
	Message string `json:"message,omitempty"`

	// DocumentID links the task to the extracted document.
	DocumentID string `json:"document_id,omitempty"`

	// ChunkCount is the number of chunks produced on completion.
	ChunkCount int `json:"chunk_count"`

	// StartedAt is when the task was created.
	StartedAt time.Time `json:"started_at"`

	// UpdatedAt is when the task last changed state.
	UpdatedAt time.Time `json:"updated_at"`
}

// newTask creates a pending task for the given file.
func newTask(fileName string) Task {
	now := time.Now()
	return Task{
		ID:        uuid.NewString(),
		FileName:  fileName,
		Status:    StatusPending,
		StartedAt: now,
		UpdatedAt: now,
	}
}

// Failed reports whether the task stopped on an error.
func (t *Task) Failed() bool {
	return t.Status == StatusFailed
}

func (t *Task) advance(status Status, message string) {
	t.Status = status
	t.Message = message
	t.UpdatedAt = time.Now()
}

func (t *Task) complete(chunkCount int) {
	t.ChunkCount = chunkCount
	t.advance(StatusCompleted, "done")
}

func (t *Task) fail(err error) {
	t.advance(StatusFailed, err.Error())
}
