package gml

import (
	"errors"
	"fmt"
	"maps"
	"strconv"
	"strings"

	"github.com/mravens/whitted-raytracer/internal/prim"
)

type RenderArgs struct {
	AmbientLight *Point // The intensity of ambient light (a point)
	Lights       []*PointLight
	Scene        SceneObject
	Depth        int     // The recursion depth limit
	Fov          float64 // Degrees
	Width        int     // Pixels
	Height       int     // Pixels
	File         string
}

type EvalState struct {
	CurrToken TokenGroup // The token that is currently being evaluated
	Stack     []Value
	Env       map[string]Value
	Render    func(*EvalState, *RenderArgs) error
	// Optional for debugging, can be nil
	Tracer func(string)
}

type Value interface {
	fmt.Stringer
	value()
}

type VInt int

func (VInt) value() {}

func (v VInt) String() string {
	return fmt.Sprintf("%d", int(v))
}

type VReal float64

func (VReal) value() {}

func (v VReal) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}

type VBool bool

func (VBool) value() {}

func (v VBool) String() string {
	return strconv.FormatBool(bool(v))
}

type VString string

func (VString) value() {}

func (v VString) String() string {
	return strconv.Quote(string(v))
}

type VClosure struct {
	Code TokenList
	Env  map[string]Value
}

func (VClosure) value() {}

func formatMap[V fmt.Stringer](m map[string]V) string {
	var sb strings.Builder
	sb.WriteString("{")
	for k, v := range m {
		if sb.Len() > 1 {
			sb.WriteString(", ")
		}
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(v.String())
	}
	sb.WriteString("}")
	return sb.String()
}

func (v VClosure) String() string {
	return fmt.Sprintf("Closure(%v, env=%v)", v.Code, formatMap(v.Env))
}

type VArray struct {
	Elements []Value
}

func (a VArray) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, v := range a.Elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.String())
	}
	sb.WriteString("]")
	return sb.String()
}

func (VArray) value() {}

type Point struct {
	X, Y, Z VReal
}

func (Point) value() {}

func (p Point) String() string {
	return fmt.Sprintf("Point(%v, %v, %v)", p.X, p.Y, p.Z)
}

// SceneObject is a node in a GML scene graph. Every shape node carries an
// accumulated object-to-world transform rather than a mutable Center point
// (spec.md §4.2's transform-inverse model): translate/uscale/rotatex/y/z
// all work by composing a new Mat4 onto the existing one via WithTransform,
// the new transform applied outermost (last GML operation wins first).
type SceneObject interface {
	Value

	Transform() prim.Mat4
	WithTransform(m prim.Mat4) SceneObject

	// WithPattern attaches a Pattern (pushed by the stripes/gradient/ring/
	// checker builtins) to every shape the object contains, overriding its
	// surface function for color purposes. The raytracer bridge reads it
	// back via a type switch when building a Material.
	WithPattern(p Pattern) SceneObject
}

// composeTransform prepends additional so it is applied after existing when
// mapping an object-space point to world space: world = additional *
// existing * object. This matches the order a GML program reads in: the
// operation written later in the source (and therefore applied to the
// scene object later on the stack) takes outermost effect.
func composeTransform(existing, additional prim.Mat4) prim.Mat4 {
	return additional.Mul(existing)
}

// Sphere is a unit sphere centered at the origin in object space.
type Sphere struct {
	ObjectTransform prim.Mat4
	SurfaceFn       VClosure
	PatternVal      Value // nil, or a Pattern set by WithPattern
}

func (Sphere) value() {}

func (s Sphere) String() string {
	return fmt.Sprintf("Sphere(transform: %v)", s.ObjectTransform)
}

func (s Sphere) Transform() prim.Mat4 { return s.ObjectTransform }

func (s *Sphere) WithTransform(m prim.Mat4) SceneObject {
	return &Sphere{ObjectTransform: composeTransform(s.ObjectTransform, m), SurfaceFn: s.SurfaceFn, PatternVal: s.PatternVal}
}

func (s *Sphere) WithPattern(p Pattern) SceneObject {
	return &Sphere{ObjectTransform: s.ObjectTransform, SurfaceFn: s.SurfaceFn, PatternVal: p}
}

// Plane is the object-space y=0 plane.
type Plane struct {
	ObjectTransform prim.Mat4
	SurfaceFn       VClosure
	PatternVal      Value
}

func (Plane) value() {}

func (p Plane) String() string {
	return fmt.Sprintf("Plane(transform: %v)", p.ObjectTransform)
}

func (p Plane) Transform() prim.Mat4 { return p.ObjectTransform }

func (p *Plane) WithTransform(m prim.Mat4) SceneObject {
	return &Plane{ObjectTransform: composeTransform(p.ObjectTransform, m), SurfaceFn: p.SurfaceFn, PatternVal: p.PatternVal}
}

func (p *Plane) WithPattern(pat Pattern) SceneObject {
	return &Plane{ObjectTransform: p.ObjectTransform, SurfaceFn: p.SurfaceFn, PatternVal: pat}
}

// Cube is the object-space [-1,1]^3 cube.
type Cube struct {
	ObjectTransform prim.Mat4
	SurfaceFn       VClosure
	PatternVal      Value
}

func (Cube) value() {}

func (c Cube) String() string {
	return fmt.Sprintf("Cube(transform: %v)", c.ObjectTransform)
}

func (c Cube) Transform() prim.Mat4 { return c.ObjectTransform }

func (c *Cube) WithTransform(m prim.Mat4) SceneObject {
	return &Cube{ObjectTransform: composeTransform(c.ObjectTransform, m), SurfaceFn: c.SurfaceFn, PatternVal: c.PatternVal}
}

func (c *Cube) WithPattern(p Pattern) SceneObject {
	return &Cube{ObjectTransform: c.ObjectTransform, SurfaceFn: c.SurfaceFn, PatternVal: p}
}

// Union groups several scene objects; transforming or painting a Union
// pushes the operation down onto each member rather than tracking one of
// its own, since a Union itself has no surface to shade.
type Union struct {
	Objects []SceneObject
}

func (Union) value() {}

func (u Union) String() string {
	return fmt.Sprintf("Union(%v)", u.Objects)
}

func (u Union) Transform() prim.Mat4 { return prim.Identity4() }

func (u *Union) WithTransform(m prim.Mat4) SceneObject {
	v := &Union{
		Objects: make([]SceneObject, len(u.Objects)),
	}
	for i := range u.Objects {
		v.Objects[i] = u.Objects[i].WithTransform(m)
	}
	return v
}

func (u *Union) WithPattern(p Pattern) SceneObject {
	v := &Union{
		Objects: make([]SceneObject, len(u.Objects)),
	}
	for i := range u.Objects {
		v.Objects[i] = u.Objects[i].WithPattern(p)
	}
	return v
}

type PointLight struct {
	Position Point
	Color    Point // RGB
}

func (PointLight) value() {}

func (p PointLight) String() string {
	return fmt.Sprintf("PointLight(pos=%v, color=%v)", p.Position, p.Color)
}

// PatternKind names one of the Phong pattern variants a GML scene can paint
// a shape with; the raytracer bridge maps these onto raytracer.Pattern.
type PatternKind string

const (
	PatternStripes  PatternKind = "stripes"
	PatternGradient PatternKind = "gradient"
	PatternRing     PatternKind = "ring"
	PatternChecker  PatternKind = "checker"
)

// Pattern is a two-color Phong pattern, as produced by the stripes/
// gradient/ring/checker builtins (new: the teacher's GML had no pattern
// support at all).
type Pattern struct {
	Kind PatternKind
	A, B Point
}

func (Pattern) value() {}

func (p Pattern) String() string {
	return fmt.Sprintf("Pattern(%s, %v, %v)", p.Kind, p.A, p.B)
}

func NewEvalState() *EvalState {
	return &EvalState{
		Env: make(map[string]Value),
	}
}

func (e *EvalState) tracef(format string, args ...any) {
	if e.Tracer != nil {
		e.Tracer(fmt.Sprintf(format, args...))
	}
}

var ErrEmptyStack = errors.New("empty stack")
var ErrUnboundIdentifier = errors.New("unbound identifier")

func (e *EvalState) Eval(program TokenList) error {
	for _, token := range program {
		if err := e.evalOneStep(token); err != nil {
			return err
		}
	}
	return nil
}

func (e *EvalState) evalOneStep(token TokenGroup) error {
	e.CurrToken = token
	if e.Tracer != nil {
		e.tracef("==============================\n")
		e.tracef("step: %v\nstack:\n", TokenGroupDebugString(token))
		for i, v := range e.Stack {
			e.tracef("  %d: %v\n", i, v)
		}
		e.tracef("env:\n")
		for k, v := range e.Env {
			e.tracef("  %s: %v\n", k, v)
		}
	}
	switch token := token.(type) {
	case *IntLiteral:
		e.push(VInt(token.Value))
	case *FloatLiteral:
		e.push(VReal(token.Value))
	case *BoolLiteral:
		e.push(VBool(token.Value))
	case *StringLiteral:
		e.push(VString(token.Value))
	case *Function:
		e.push(VClosure{Code: token.Body, Env: maps.Clone(e.Env)})
	case *Binder:
		v, err := e.pop()
		if err != nil {
			return err
		}
		e.Env[token.Name] = v
	case *Identifier:
		if b := builtins[token.Name]; b != nil {
			return b.Run(e)
		}
		// Else look up a variable in the environment.
		if val, ok := e.Env[token.Name]; ok {
			e.push(val)
		} else {
			return fmt.Errorf("%w: %s", ErrUnboundIdentifier, token.Name)
		}
	case *Array:
		oldStack := e.Stack
		defer func() { e.Stack = oldStack }()
		e.Stack = nil
		err := e.Eval(token.Elements)
		if err != nil {
			return err
		}
		oldStack = append(oldStack, VArray{Elements: e.Stack})
	default:
		return fmt.Errorf("unknown token: %v", token)
	}
	return nil
}

func (e *EvalState) push(value Value) {
	e.Stack = append(e.Stack, value)
}

func (e *EvalState) pop() (Value, error) {
	if len(e.Stack) == 0 {
		return nil, fmt.Errorf("%w: token: %v", ErrEmptyStack, TokenGroupDebugString(e.CurrToken))
	}
	val := e.Stack[len(e.Stack)-1]
	e.Stack = e.Stack[:len(e.Stack)-1]
	return val, nil
}

func popValue[T Value](e *EvalState) (T, error) {
	v, err := e.pop()
	if err != nil {
		return *new(T), err
	}
	derived, ok := v.(T)
	if !ok {
		zero := *new(T)
		return zero, fmt.Errorf("type mismatch (evaluating %s): expected %T, got %v (%T)", TokenGroupDebugString(e.CurrToken), zero, v, v)
	}
	return derived, nil
}

func pop3[T Value](e *EvalState) (T, T, T, error) {
	var x, y, z T
	var err error
	if z, err = popValue[T](e); err != nil {
		return x, y, z, err
	}
	if y, err = popValue[T](e); err != nil {
		return x, y, z, err
	}
	if x, err = popValue[T](e); err != nil {
		return x, y, z, err
	}
	return x, y, z, nil
}

type stateModifier = func(*EvalState) error

type Builtin struct {
	Name string
	Func func(*EvalState) error
}

var errNotImplemented = errors.New("not implemented")

func (b Builtin) Run(e *EvalState) error {
	if b.Func == nil {
		return fmt.Errorf("%w: %s", errNotImplemented, b.Name)
	}
	return b.Func(e)
}

var builtins map[string]*Builtin

func init() {
	builtins = map[string]*Builtin{}

	registerBuiltin := func(name string, f stateModifier) {
		builtins[name] = &Builtin{Name: name, Func: f}
	}

	registerBuiltin("addi", addi)
	registerBuiltin("apply", apply)
	registerBuiltin("cube", cube)
	registerBuiltin("sphere", sphere)
	registerBuiltin("plane", plane)
	registerBuiltin("point", point)
	registerBuiltin("pointlight", pointlight)
	registerBuiltin("translate", translate)
	registerBuiltin("uscale", uscale)
	registerBuiltin("rotatex", rotatex)
	registerBuiltin("rotatey", rotatey)
	registerBuiltin("rotatez", rotatez)
	registerBuiltin("union", union)
	registerBuiltin("paint", paint)
	registerBuiltin("stripes", makePattern(PatternStripes))
	registerBuiltin("gradient", makePattern(PatternGradient))
	registerBuiltin("ring", makePattern(PatternRing))
	registerBuiltin("checker", makePattern(PatternChecker))
	registerBuiltin("render", render)
}

func addi(e *EvalState) error {
	a, err := popValue[VInt](e)
	if err != nil {
		return err
	}
	b, err := popValue[VInt](e)
	if err != nil {
		return err
	}
	e.push(a + b)
	return nil
}

func apply(e *EvalState) error {
	closure, err := popValue[VClosure](e)
	if err != nil {
		return err
	}
	oldEnv := e.Env
	defer func() { e.Env = oldEnv }()
	e.Env = closure.Env
	return e.Eval(closure.Code)
}

func point(e *EvalState) error {
	x, y, z, err := pop3[VReal](e)
	if err != nil {
		return err
	}
	e.push(Point{X: x, Y: y, Z: z})
	return nil
}

func pointlight(e *EvalState) error {
	// pos color pointlight
	color, err := popValue[Point](e)
	if err != nil {
		return err
	}
	pos, err := popValue[Point](e)
	if err != nil {
		return err
	}
	e.push(&PointLight{Position: pos, Color: color})
	return nil
}

// sphere creates a unit sphere at the origin
// with the surface function provided on the
// top of the stack.
func sphere(e *EvalState) error {
	surfaceFn, err := popValue[VClosure](e)
	if err != nil {
		return err
	}
	e.push(&Sphere{ObjectTransform: prim.Identity4(), SurfaceFn: surfaceFn})
	return nil
}

// plane creates the object-space y=0 plane with the surface function
// provided on top of the stack, following sphere's calling convention.
func plane(e *EvalState) error {
	surfaceFn, err := popValue[VClosure](e)
	if err != nil {
		return err
	}
	e.push(&Plane{ObjectTransform: prim.Identity4(), SurfaceFn: surfaceFn})
	return nil
}

// cube creates the object-space [-1,1]^3 cube with the surface function
// provided on top of the stack, following sphere's calling convention.
func cube(e *EvalState) error {
	surfaceFn, err := popValue[VClosure](e)
	if err != nil {
		return err
	}
	e.push(&Cube{ObjectTransform: prim.Identity4(), SurfaceFn: surfaceFn})
	return nil
}

func translate(e *EvalState) error {
	x, y, z, err := pop3[VReal](e)
	if err != nil {
		return err
	}
	s, err := popValue[SceneObject](e)
	if err != nil {
		return err
	}
	m := prim.Translation(float32(x), float32(y), float32(z))
	e.push(s.WithTransform(m))
	return nil
}

// uscale scales a scene object uniformly along all three axes.
func uscale(e *EvalState) error {
	factor, err := popValue[VReal](e)
	if err != nil {
		return err
	}
	s, err := popValue[SceneObject](e)
	if err != nil {
		return err
	}
	e.push(s.WithTransform(prim.UniformScaling(float32(factor))))
	return nil
}

// rotatex rotates a scene object by angle radians about the x axis.
func rotatex(e *EvalState) error {
	angle, err := popValue[VReal](e)
	if err != nil {
		return err
	}
	s, err := popValue[SceneObject](e)
	if err != nil {
		return err
	}
	e.push(s.WithTransform(prim.RotationX(float32(angle))))
	return nil
}

// rotatey rotates a scene object by angle radians about the y axis.
func rotatey(e *EvalState) error {
	angle, err := popValue[VReal](e)
	if err != nil {
		return err
	}
	s, err := popValue[SceneObject](e)
	if err != nil {
		return err
	}
	e.push(s.WithTransform(prim.RotationY(float32(angle))))
	return nil
}

// rotatez rotates a scene object by angle radians about the z axis.
func rotatez(e *EvalState) error {
	angle, err := popValue[VReal](e)
	if err != nil {
		return err
	}
	s, err := popValue[SceneObject](e)
	if err != nil {
		return err
	}
	e.push(s.WithTransform(prim.RotationZ(float32(angle))))
	return nil
}

// makePattern returns a builtin that pops two colors (b then a, the usual
// reverse-push order) and pushes a Pattern of the given kind.
func makePattern(kind PatternKind) stateModifier {
	return func(e *EvalState) error {
		b, err := popValue[Point](e)
		if err != nil {
			return err
		}
		a, err := popValue[Point](e)
		if err != nil {
			return err
		}
		e.push(Pattern{Kind: kind, A: a, B: b})
		return nil
	}
}

// paint attaches a Pattern (built by stripes/gradient/ring/checker) to a
// scene object, replacing its surface's color source.
func paint(e *EvalState) error {
	pattern, err := popValue[Pattern](e)
	if err != nil {
		return err
	}
	s, err := popValue[SceneObject](e)
	if err != nil {
		return err
	}
	e.push(s.WithPattern(pattern))
	return nil
}

func union(e *EvalState) error {
	a, err := popValue[SceneObject](e)
	if err != nil {
		return err
	}
	b, err := popValue[SceneObject](e)
	if err != nil {
		return err
	}
	e.push(&Union{Objects: []SceneObject{a, b}})
	return nil
}

func render(e *EvalState) error {
	// Pop the values of RenderArgs, reverse order.
	// amb lights obj depth fov wid ht file render
	file, err := popValue[VString](e)
	if err != nil {
		return err
	}
	height, err := popValue[VInt](e)
	if err != nil {
		return err
	}
	width, err := popValue[VInt](e)
	if err != nil {
		return err
	}
	fov, err := popValue[VReal](e)
	if err != nil {
		return err
	}
	depth, err := popValue[VInt](e)
	if err != nil {
		return err
	}
	obj, err := popValue[SceneObject](e)
	if err != nil {
		return err
	}
	lights, err := popValue[VArray](e)
	if err != nil {
		return err
	}
	amb, err := popValue[Point](e)
	if err != nil {
		return err
	}
	// Every element of the lights array must be a *PointLight.
	lightInts := make([]*PointLight, len(lights.Elements))
	for i, l := range lights.Elements {
		if l, ok := l.(*PointLight); ok {
			lightInts[i] = l
		} else {
			return fmt.Errorf("expected lights array to contain *PointLight, got %T", l)
		}
	}
	if e.Render == nil {
		return fmt.Errorf("render function not set")
	}
	return e.Render(e, &RenderArgs{
		Width:        int(width),
		Height:       int(height),
		File:         string(file),
		Fov:          float64(fov),
		Depth:        int(depth),
		Scene:        obj,
		AmbientLight: &amb,
		Lights:       lightInts,
	})
}
