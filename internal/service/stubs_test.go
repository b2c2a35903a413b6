package service

import (
	"context"
	"time"

	"wirecalc/internal/models"
)

// Test doubles for the repository interfaces.

type stateRepoStub struct {
	loadResp models.CalculatorState
	loadErr  error
	saveErr  error
	saved    []models.CalculatorState
	loads    int
}

func (s *stateRepoStub) Save(_ context.Context, st models.CalculatorState) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, st)
	return nil
}

func (s *stateRepoStub) Load(_ context.Context) (models.CalculatorState, error) {
	s.loads++
	return s.loadResp, s.loadErr
}

type eventRepoStub struct {
	appendErr error
	appended  []models.CalcEvent

	listResp []models.CalcEvent
	listErr  error
	listFrom time.Time
	listTo   time.Time
	listType string

	deleteN      int64
	deleteErr    error
	deleteCutoff time.Time
	deletes      int
}

func (e *eventRepoStub) Append(_ context.Context, ev models.CalcEvent) error {
	if e.appendErr != nil {
		return e.appendErr
	}
	e.appended = append(e.appended, ev)
	return nil
}

func (e *eventRepoStub) List(_ context.Context, from, to time.Time, typ string) ([]models.CalcEvent, error) {
	e.listFrom, e.listTo, e.listType = from, to, typ
	return e.listResp, e.listErr
}

func (e *eventRepoStub) DeleteBefore(_ context.Context, cutoff time.Time) (int64, error) {
	e.deletes++
	e.deleteCutoff = cutoff
	return e.deleteN, e.deleteErr
}

type authRepoStub struct {
	createID  int
	createErr error
	createdU  string
	createdH  string

	user   *models.User
	getErr error
}

func (a *authRepoStub) Create(username, passwordHash string) (int, error) {
	a.createdU, a.createdH = username, passwordHash
	return a.createID, a.createErr
}

func (a *authRepoStub) GetByUsername(string) (*models.User, error) {
	return a.user, a.getErr
}
