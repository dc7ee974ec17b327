package state

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

type fakeState struct {
	name  string
	trace *[]string
}

func (f *fakeState) Enter()                    { *f.trace = append(*f.trace, "enter "+f.name) }
func (f *fakeState) Exit()                     { *f.trace = append(*f.trace, "exit "+f.name) }
func (f *fakeState) Update(deltaTime float64)  { *f.trace = append(*f.trace, "update "+f.name) }
func (f *fakeState) Draw(screen *ebiten.Image) {}

func TestStateMachineTransitions(t *testing.T) {
	var trace []string
	menu := &fakeState{name: "menu", trace: &trace}
	game := &fakeState{name: "game", trace: &trace}

	sm := NewStateMachine()
	assert.Nil(t, sm.Current())
	sm.Update(0.016)

	sm.SetState(menu)
	sm.SetState(menu)
	sm.Update(0.016)
	sm.SetState(game)
	assert.Same(t, game, sm.Current())

	assert.Equal(t, []string{"enter menu", "update menu", "exit menu", "enter game"}, trace)
}
