package rc_test

import (
	"fmt"

	"github.com/katalvlaran/arbor/rc"
)

// ExampleRef_Clone shows shared ownership: the value survives until the
// last owning handle is dropped, and counts track each step.
func ExampleRef_Clone() {
	a := rc.New(5, rc.WithFinalizer(func(v *int) {
		fmt.Println("destroyed:", *v)
	}))
	fmt.Println("after new:", a.StrongCount())

	b := a.Clone()
	fmt.Println("after clone:", a.StrongCount())

	b.Drop()
	fmt.Println("after first drop:", a.StrongCount())

	a.Drop() // last owner gone, finalizer fires
	// Output:
	// after new: 1
	// after clone: 2
	// after first drop: 1
	// destroyed: 5
}

// ExampleWeak_Upgrade shows the upgrade-or-absent contract of non-owning
// handles: present while an owner remains, absent afterwards.
func ExampleWeak_Upgrade() {
	r := rc.New("payload")
	w := r.Downgrade()

	if up, ok := w.Upgrade(); ok {
		fmt.Println("alive:", up.Value())
		up.Drop()
	}

	r.Drop()
	if _, ok := w.Upgrade(); !ok {
		fmt.Println("absent")
	}
	w.Drop()
	// Output:
	// alive: payload
	// absent
}
