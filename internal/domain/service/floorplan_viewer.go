package service

import (
	"context"
	"fmt"

	"pnw-map/internal/domain/model"
	"pnw-map/internal/domain/repository"
)

// ViewerState is the interaction state of one building's floor-plan
// presenter.
type ViewerState string

const (
	// StateIdle: polygon rendered, not interacted with.
	StateIdle ViewerState = "idle"
	// StatePopupOpen: building popup listing the available floors.
	StatePopupOpen ViewerState = "popup_open"
	// StateModalOpen: a floor plan is displayed with zoom/pan active.
	StateModalOpen ViewerState = "modal_open"
)

// Zoom scale clamp for the floor-plan modal.
const (
	MinZoomScale = 0.5
	MaxZoomScale = 3.0
)

// NoFloorPlansNotice is shown in place of floor buttons for a building with
// zero registered floors.
const NoFloorPlansNotice = "No floor plans available for this building"

// FloorPlanViewer drives the popup -> modal -> zoom/pan lifecycle for one
// building. It owns its zoom/pan state and the pointer/touch listener
// registrations for the modal session; every exit path deregisters them so
// a session can never leak listeners.
//
// A viewer instance belongs to a single presenter and is not safe for
// concurrent use.
type FloorPlanViewer struct {
	building model.BuildingInfo
	storage  repository.FloorPlanStorage

	state    ViewerState
	floorIdx int
	image    []byte

	scale     float64
	offsetX   float64
	offsetY   float64
	teardowns []func()
}

// NewFloorPlanViewer creates a viewer in the Idle state.
func NewFloorPlanViewer(building model.BuildingInfo, storage repository.FloorPlanStorage) *FloorPlanViewer {
	return &FloorPlanViewer{
		building: building,
		storage:  storage,
		state:    StateIdle,
		scale:    1.0,
	}
}

// State returns the current interaction state.
func (v *FloorPlanViewer) State() ViewerState { return v.state }

// OpenPopup handles a click on the building polygon.
func (v *FloorPlanViewer) OpenPopup() {
	if v.state == StateIdle {
		v.state = StatePopupOpen
	}
}

// PopupNotice returns the text shown instead of floor buttons when the
// building has no registered floors, or "" when floors exist.
func (v *FloorPlanViewer) PopupNotice() string {
	if len(v.building.Floors) == 0 {
		return NoFloorPlansNotice
	}
	return ""
}

// Floors lists the floors offered in the popup.
func (v *FloorPlanViewer) Floors() []model.Floor {
	return v.building.Floors
}

// SelectFloor fetches the plan for a floor level and opens the modal. On a
// fetch failure the viewer stays in PopupOpen and the error is surfaced for
// the caller to alert with.
func (v *FloorPlanViewer) SelectFloor(ctx context.Context, level int) error {
	if v.state != StatePopupOpen {
		return fmt.Errorf("floor selection outside popup (state %s)", v.state)
	}
	idx := -1
	for i, f := range v.building.Floors {
		if f.Level == level {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("building %s has no floor %d: %w", v.building.ID, level, model.ErrNotFound)
	}

	image, err := v.storage.Download(ctx, v.building.ID, level)
	if err != nil {
		return fmt.Errorf("failed to fetch floor plan %s: %w", model.FloorPlanKey(v.building.ID, level), err)
	}

	v.floorIdx = idx
	v.image = image
	v.state = StateModalOpen
	v.resetZoomPan()
	return nil
}

// CurrentFloor returns the floor displayed in the modal.
func (v *FloorPlanViewer) CurrentFloor() model.Floor {
	if v.state != StateModalOpen {
		return model.Floor{}
	}
	return v.building.Floors[v.floorIdx]
}

// Image returns the plan bytes currently displayed.
func (v *FloorPlanViewer) Image() []byte { return v.image }

// CanStepPrev reports whether a previous floor exists; the prev button is
// disabled at the first floor.
func (v *FloorPlanViewer) CanStepPrev() bool {
	return v.state == StateModalOpen && v.floorIdx > 0
}

// CanStepNext reports whether a next floor exists; the next button is
// disabled at the last floor.
func (v *FloorPlanViewer) CanStepNext() bool {
	return v.state == StateModalOpen && v.floorIdx < len(v.building.Floors)-1
}

// StepPrev moves to the adjacent lower floor, re-running the fetch. On
// fetch failure the modal keeps showing the current floor.
func (v *FloorPlanViewer) StepPrev(ctx context.Context) error {
	return v.step(ctx, -1)
}

// StepNext moves to the adjacent higher floor, re-running the fetch.
func (v *FloorPlanViewer) StepNext(ctx context.Context) error {
	return v.step(ctx, +1)
}

func (v *FloorPlanViewer) step(ctx context.Context, delta int) error {
	if v.state != StateModalOpen {
		return fmt.Errorf("floor step outside modal (state %s)", v.state)
	}
	idx := v.floorIdx + delta
	if idx < 0 || idx >= len(v.building.Floors) {
		return fmt.Errorf("no adjacent floor in that direction")
	}
	level := v.building.Floors[idx].Level
	image, err := v.storage.Download(ctx, v.building.ID, level)
	if err != nil {
		return fmt.Errorf("failed to fetch floor plan %s: %w", model.FloorPlanKey(v.building.ID, level), err)
	}
	v.floorIdx = idx
	v.image = image
	v.resetZoomPan()
	return nil
}

// Scale returns the current zoom scale.
func (v *FloorPlanViewer) Scale() float64 { return v.scale }

// Offset returns the current pan translation.
func (v *FloorPlanViewer) Offset() (x, y float64) { return v.offsetX, v.offsetY }

// Pan applies a pointer-drag translation delta.
func (v *FloorPlanViewer) Pan(dx, dy float64) {
	if v.state != StateModalOpen {
		return
	}
	v.offsetX += dx
	v.offsetY += dy
}

// Pinch multiplies the scale by a gesture factor, clamped to the
// [MinZoomScale, MaxZoomScale] range regardless of gesture magnitude.
func (v *FloorPlanViewer) Pinch(factor float64) {
	if v.state != StateModalOpen || factor <= 0 {
		return
	}
	v.scale = clampScale(v.scale * factor)
}

// DoubleTap toggles between scale 1 and scale 2. Returning to 1 from any
// other scale resets the translation to zero.
func (v *FloorPlanViewer) DoubleTap() {
	if v.state != StateModalOpen {
		return
	}
	if v.scale == 1.0 {
		v.scale = 2.0
		return
	}
	v.resetZoomPan()
}

// RegisterListener records the teardown for a pointer/touch listener bound
// to the modal session.
func (v *FloorPlanViewer) RegisterListener(teardown func()) {
	if teardown != nil {
		v.teardowns = append(v.teardowns, teardown)
	}
}

// ActiveListeners returns the number of listeners still registered.
func (v *FloorPlanViewer) ActiveListeners() int { return len(v.teardowns) }

// CloseModal handles the explicit close button or a click outside the
// modal content: tears down every registered listener and returns to the
// popup.
func (v *FloorPlanViewer) CloseModal() {
	if v.state != StateModalOpen {
		return
	}
	v.teardownListeners()
	v.image = nil
	v.state = StatePopupOpen
}

// ClosePopup dismisses the popup. Closing while the modal is still open
// also tears the modal down first, so no exit path skips listener
// deregistration.
func (v *FloorPlanViewer) ClosePopup() {
	if v.state == StateModalOpen {
		v.CloseModal()
	}
	if v.state == StatePopupOpen {
		v.state = StateIdle
	}
}

func (v *FloorPlanViewer) resetZoomPan() {
	v.scale = 1.0
	v.offsetX = 0
	v.offsetY = 0
}

func (v *FloorPlanViewer) teardownListeners() {
	for _, teardown := range v.teardowns {
		teardown()
	}
	v.teardowns = nil
}

func clampScale(s float64) float64 {
	if s < MinZoomScale {
		return MinZoomScale
	}
	if s > MaxZoomScale {
		return MaxZoomScale
	}
	return s
}
