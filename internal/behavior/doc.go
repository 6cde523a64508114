// Package behavior provides the pluggable-behaviour building block shared by
// the pattern packages: a Slot that holds zero or one collaborator for a
// capability and can be rebound at any time.
//
// A subject that delegates to a collaborator keeps one Slot per capability.
// Reading an empty slot yields ErrUnbound instead of a nil dereference, so
// every delegating operation has a defined failure:
//
//	type Duck struct {
//	    quack behavior.Slot[QuackBehavior]
//	}
//
//	func (d *Duck) PerformQuack() (string, error) {
//	    q, err := d.quack.Get()
//	    if err != nil {
//	        return "", err
//	    }
//	    return q.Quack(), nil
//	}
package behavior
