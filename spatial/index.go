// Package spatial maps world positions to registered entities. It rides on a
// static chipmunk space purely for its spatial hashing; nothing here steps
// the simulation.
package spatial

import (
	"github.com/jakecoffman/cp/v2"

	"github.com/AIalchemistART/AIalchemistsLAIR/ecs"
)

const pointRadius = 0.25

// Index registers entities at grid positions and answers radius queries.
type Index struct {
	space         *cp.Space
	shapeToEntity map[*cp.Shape]ecs.Entity
	entityToBody  map[ecs.Entity]*cp.Body
}

func NewIndex() *Index {
	return &Index{
		space:         cp.NewSpace(),
		shapeToEntity: make(map[*cp.Shape]ecs.Entity),
		entityToBody:  make(map[ecs.Entity]*cp.Body),
	}
}

// AddEntity registers an entity at a grid position. Re-adding moves it.
func (i *Index) AddEntity(e ecs.Entity, gridX, gridY float64) {
	if i == nil || !e.Valid() {
		return
	}
	if body, ok := i.entityToBody[e]; ok {
		body.SetPosition(cp.Vector{X: gridX, Y: gridY})
		body.EachShape(func(s *cp.Shape) {
			i.space.ReindexShape(s)
		})
		return
	}
	body := cp.NewStaticBody()
	body.SetPosition(cp.Vector{X: gridX, Y: gridY})
	shape := cp.NewCircle(body, pointRadius, cp.Vector{})
	shape.SetSensor(true)
	i.space.AddBody(body)
	i.space.AddShape(shape)
	i.shapeToEntity[shape] = e
	i.entityToBody[e] = body
}

// RemoveEntity drops an entity's registration.
func (i *Index) RemoveEntity(e ecs.Entity) {
	if i == nil {
		return
	}
	body, ok := i.entityToBody[e]
	if !ok {
		return
	}
	body.EachShape(func(s *cp.Shape) {
		delete(i.shapeToEntity, s)
		i.space.RemoveShape(s)
	})
	i.space.RemoveBody(body)
	delete(i.entityToBody, e)
}

// Nearby returns the entities registered within radius of a grid position.
func (i *Index) Nearby(gridX, gridY, radius float64) []ecs.Entity {
	if i == nil || radius <= 0 {
		return nil
	}
	center := cp.Vector{X: gridX, Y: gridY}
	bb := cp.NewBBForCircle(center, radius)

	var out []ecs.Entity
	i.space.BBQuery(bb, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		e, ok := i.shapeToEntity[shape]
		if !ok {
			return
		}
		if shape.Body().Position().Distance(center) <= radius {
			out = append(out, e)
		}
	}, nil)
	return out
}

// Position returns an entity's registered grid position.
func (i *Index) Position(e ecs.Entity) (float64, float64, bool) {
	if i == nil {
		return 0, 0, false
	}
	body, ok := i.entityToBody[e]
	if !ok {
		return 0, 0, false
	}
	p := body.Position()
	return p.X, p.Y, true
}
