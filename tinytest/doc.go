// Package tinytest is a small test and benchmark harness for programs that
// carry their own checks.
//
// Tests and benchmarks are declared from init functions, anywhere in the
// program, and collect themselves into a process-wide Registry:
//
//	func init() {
//		tinytest.Test("math/1", func(t *tinytest.T) tinytest.Outcome {
//			if 5 < 4 {
//				return t.Fail()
//			}
//			return t.Pass()
//		})
//
//		tinytest.BenchState[int]("state", tinytest.Times(10000)).
//			OnSetup(func(s *int) { *s = 13004 }).
//			OnIter(func(s *int, iter int) { fmt.Println("state:", *s) })
//	}
//
//	func main() { tinytest.Main() }
//
// A name of the form "group/name" places the unit in a named group; other
// names go to the unnamed group, which is reported first. Within a group,
// units run in the order they were declared.
//
// Main runs every test, then every benchmark, and exits 0 only if all tests
// passed. Output written by a unit is captured and replayed below its status
// line, or redirected to a file with -l.
package tinytest
