package ecs

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/sirupsen/logrus"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypePlayer
)

// PhysicsConfig holds the space-wide simulation constants. Gravity is in
// pixels per tick squared; Damping is the fraction of velocity kept per tick.
type PhysicsConfig struct {
	Gravity    float64
	Damping    float64
	Iterations int
}

// BoxSpec describes an axis-aligned box by its centre.
type BoxSpec struct {
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Mass     float64
	Friction float64
}

// PhysicsWorld owns the Chipmunk space and maps shapes back to entities.
type PhysicsWorld struct {
	space *cp.Space
	log   logrus.FieldLogger

	shapeToEntity map[*cp.Shape]Entity
	bodies        map[Entity]*cp.Body
	shapes        map[Entity]*cp.Shape

	begins []CollisionEvent
	seen   map[[2]Entity]struct{}
}

// NewPhysicsWorld creates an empty space configured by cfg.
func NewPhysicsWorld(cfg PhysicsConfig, log logrus.FieldLogger) *PhysicsWorld {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.WarnLevel)
		log = l
	}
	pw := &PhysicsWorld{
		space:         cp.NewSpace(),
		log:           log,
		shapeToEntity: make(map[*cp.Shape]Entity),
		bodies:        make(map[Entity]*cp.Body),
		shapes:        make(map[Entity]*cp.Shape),
		seen:          make(map[[2]Entity]struct{}),
	}
	pw.Configure(cfg)
	pw.setupHandlers()
	return pw
}

// Configure applies cfg to the space. Zero iterations keep the current value.
func (pw *PhysicsWorld) Configure(cfg PhysicsConfig) {
	if pw == nil || pw.space == nil {
		return
	}
	pw.space.SetGravity(cp.Vector{X: 0, Y: cfg.Gravity})
	if cfg.Damping > 0 && cfg.Damping <= 1 {
		pw.space.SetDamping(cfg.Damping)
	}
	if cfg.Iterations > 0 {
		pw.space.Iterations = uint(cfg.Iterations)
	}
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// AddStaticBox attaches a solid box to the space's static body.
func (pw *PhysicsWorld) AddStaticBox(e Entity, box BoxSpec) *cp.Shape {
	if pw == nil || pw.space == nil {
		return nil
	}
	bb := cp.BB{
		L: box.X - box.Width/2,
		B: box.Y - box.Height/2,
		R: box.X + box.Width/2,
		T: box.Y + box.Height/2,
	}
	shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
	shape.SetFriction(box.Friction)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypeSolid)
	pw.space.AddShape(shape)

	pw.track(e, pw.space.StaticBody, shape)
	return shape
}

// AddPlayerBox creates a dynamic box that never rotates and reports
// collision begins.
func (pw *PhysicsWorld) AddPlayerBox(e Entity, box BoxSpec) (*cp.Body, *cp.Shape) {
	if pw == nil || pw.space == nil {
		return nil, nil
	}
	mass := box.Mass
	if mass <= 0 {
		mass = 1
	}
	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(cp.Vector{X: box.X, Y: box.Y})
	body.SetAngle(0)

	shape := cp.NewBox(body, box.Width, box.Height, 0)
	shape.SetFriction(box.Friction)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypePlayer)

	pw.space.AddBody(body)
	pw.space.AddShape(shape)

	pw.track(e, body, shape)
	pw.log.WithFields(logrus.Fields{"entity": e, "x": box.X, "y": box.Y}).Debug("physics: player body created")
	return body, shape
}

func (pw *PhysicsWorld) track(e Entity, body *cp.Body, shape *cp.Shape) {
	if !e.Valid() {
		return
	}
	pw.shapeToEntity[shape] = e
	pw.bodies[e] = body
	pw.shapes[e] = shape
}

// Body returns the body attached to e.
func (pw *PhysicsWorld) Body(e Entity) (*cp.Body, bool) {
	if pw == nil {
		return nil, false
	}
	b, ok := pw.bodies[e]
	return b, ok
}

// Remove detaches e's shape and, for dynamic bodies, its body.
func (pw *PhysicsWorld) Remove(e Entity) {
	if pw == nil || pw.space == nil {
		return
	}
	shape, ok := pw.shapes[e]
	if !ok {
		return
	}
	pw.space.RemoveShape(shape)
	if body := pw.bodies[e]; body != nil && body != pw.space.StaticBody {
		pw.space.RemoveBody(body)
	}
	delete(pw.shapeToEntity, shape)
	delete(pw.shapes, e)
	delete(pw.bodies, e)
}

// Step advances the simulation by dt and returns the contacts that began
// during the step. Each touching pair is reported once.
func (pw *PhysicsWorld) Step(dt float64) []CollisionEvent {
	if pw == nil || pw.space == nil {
		return nil
	}
	pw.begins = pw.begins[:0]
	clear(pw.seen)
	pw.space.Step(dt)
	if len(pw.begins) == 0 {
		return nil
	}
	return append([]CollisionEvent(nil), pw.begins...)
}

func (pw *PhysicsWorld) setupHandlers() {
	handler := pw.space.NewWildcardCollisionHandler(collisionTypePlayer)
	handler.UserData = pw
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*PhysicsWorld)
		if !ok || world == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		world.recordBegin(world.shapeToEntity[shapeA], world.shapeToEntity[shapeB])
		return true
	}
}

func (pw *PhysicsWorld) recordBegin(a, b Entity) {
	key := [2]Entity{a, b}
	if b < a {
		key = [2]Entity{b, a}
	}
	if _, dup := pw.seen[key]; dup {
		return
	}
	pw.seen[key] = struct{}{}
	pw.begins = append(pw.begins, CollisionEvent{A: a, B: b})
}
