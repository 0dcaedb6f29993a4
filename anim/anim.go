// Package anim provides tween-based animation for scene nodes.
//
// A TweenGroup animates a small set of float channels on one node and
// writes the results back through the node's setters, so every animated
// frame marks the node dirty and the renderer refreshes its geometry or
// uniforms. An Animator batches groups and sweeps out finished ones.
//
// Animations run on the scene-owning goroutine: call Animator.Update
// (or TweenGroup.Update) once per frame before rendering.
package anim

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/gogpu/sg"
	"github.com/gogpu/sg/scene"
)

// TweenGroup animates up to 4 float32 channels on a Node simultaneously.
// Create one via the convenience constructors (TweenTranslate, TweenScale,
// TweenRotate, TweenFill) and call Update(dt) each frame. The group writes
// values through node setters, which mark the node dirty.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	apply  func(n *scene.Node, vals [4]float32)
	node   *scene.Node

	// Done is true once every tween in the group has finished.
	Done bool
}

// Update advances all tweens by dt seconds and applies the values to the
// node. It returns true once the group has finished.
func (g *TweenGroup) Update(dt float32) bool {
	if g.Done {
		return true
	}

	var vals [4]float32
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		vals[i] = val
		if !finished {
			allDone = false
		}
	}
	g.apply(g.node, vals)
	g.Done = allDone
	return g.Done
}

// Node returns the animated node.
func (g *TweenGroup) Node() *scene.Node {
	return g.node
}

// TweenTranslate animates the node's translation to the given target
// coordinates over the specified duration using the easing function.
func TweenTranslate(n *scene.Node, toX, toY, duration float32, fn ease.TweenFunc) *TweenGroup {
	tf := n.Transform()
	g := &TweenGroup{count: 2, node: n}
	g.tweens[0] = gween.New(tf.TranslateX, toX, duration, fn)
	g.tweens[1] = gween.New(tf.TranslateY, toY, duration, fn)
	g.apply = func(n *scene.Node, vals [4]float32) {
		tf := n.Transform()
		tf.TranslateX = vals[0]
		tf.TranslateY = vals[1]
		n.SetTransform(tf)
	}
	return g
}

// TweenScale animates the node's scale factors to the given target values
// over the specified duration using the easing function.
func TweenScale(n *scene.Node, toX, toY, duration float32, fn ease.TweenFunc) *TweenGroup {
	tf := n.Transform()
	g := &TweenGroup{count: 2, node: n}
	g.tweens[0] = gween.New(tf.ScaleX, toX, duration, fn)
	g.tweens[1] = gween.New(tf.ScaleY, toY, duration, fn)
	g.apply = func(n *scene.Node, vals [4]float32) {
		tf := n.Transform()
		tf.ScaleX = vals[0]
		tf.ScaleY = vals[1]
		n.SetTransform(tf)
	}
	return g
}

// TweenRotate animates the node's rotation (radians) to the target value
// over the specified duration using the easing function.
func TweenRotate(n *scene.Node, to, duration float32, fn ease.TweenFunc) *TweenGroup {
	tf := n.Transform()
	g := &TweenGroup{count: 1, node: n}
	g.tweens[0] = gween.New(tf.Rotate, to, duration, fn)
	g.apply = func(n *scene.Node, vals [4]float32) {
		tf := n.Transform()
		tf.Rotate = vals[0]
		n.SetTransform(tf)
	}
	return g
}

// TweenFill animates all four components of the node's fill color to the
// target color. A node without a fill starts from transparent.
func TweenFill(n *scene.Node, to sg.Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := sg.Transparent
	if f := n.Style().Fill; f != nil {
		from = f.Color
	}
	g := &TweenGroup{count: 4, node: n}
	g.tweens[0] = gween.New(from.R, to.R, duration, fn)
	g.tweens[1] = gween.New(from.G, to.G, duration, fn)
	g.tweens[2] = gween.New(from.B, to.B, duration, fn)
	g.tweens[3] = gween.New(from.A, to.A, duration, fn)
	g.apply = func(n *scene.Node, vals [4]float32) {
		n.SetFill(sg.Color{R: vals[0], G: vals[1], B: vals[2], A: vals[3]})
	}
	return g
}

// Animator runs a set of tween groups and drops them as they finish.
// The zero value is ready to use.
//
// Animator is NOT safe for concurrent use; it belongs to the
// scene-owning goroutine.
type Animator struct {
	groups []*TweenGroup
}

// Add registers a group. Nil groups are ignored.
func (a *Animator) Add(g *TweenGroup) {
	if g == nil {
		return
	}
	a.groups = append(a.groups, g)
}

// Update advances all groups by dt seconds and removes finished ones.
// It returns the number of groups still running.
func (a *Animator) Update(dt float32) int {
	live := a.groups[:0]
	for _, g := range a.groups {
		if !g.Update(dt) {
			live = append(live, g)
		}
	}
	// Clear the tail so finished groups can be collected.
	for i := len(live); i < len(a.groups); i++ {
		a.groups[i] = nil
	}
	a.groups = live
	return len(a.groups)
}

// Len returns the number of running groups.
func (a *Animator) Len() int {
	return len(a.groups)
}
