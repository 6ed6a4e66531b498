/*

Package sos implements robust geometric orientation and in-circle/
in-sphere predicates using Simulation of Simplicity (SoS): ties and
degeneracies are broken by an infinitesimal symbolic perturbation
rather than by ad hoc epsilon thresholds, so the answer is always
consistent with some infinitesimal perturbation of the real input.

The package is split into a compile-time half and a runtime half:

  - cascade derives, once per (dimension, predicate) pair, the ordered
    decision table of subdeterminant sign tests that the perturbation
    expansion reduces to.
  - This package's predicates (OrientKD, InCircle, InSphere, Orient1D)
    walk that table at call time, delegating each sign test to an
    oracle (see package oracle) and combining the result with the
    permutation parity of the caller's index tuple.

Every predicate takes a point list and an Indexer rather than a
concrete point type, so callers can index directly into whatever
container (slice, memory-mapped buffer, spatial index) already holds
their points.

*/

package sos
