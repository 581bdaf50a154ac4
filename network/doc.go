// Package network models the dataset as a graph and reads complexity
// off its topology. Instances are vertices; an edge joins two
// same-class instances whose distance falls strictly below
// Options.NetworkEps (edges between classes are pruned).
//
// What:
//   - Density: complement of the edge density, so sparse graphs
//     (little same-class proximity) score high;
//   - ClsCoef: complement of the mean local clustering coefficient;
//     vertices with fewer than two neighbors contribute zero cohesion;
//   - Hubs: complement of the mean hub score from power iteration on
//     the adjacency matrix, normalized so the strongest hub scores 1.
//     An edgeless graph has all-zero scores.
//
// Why:
// Boundary-heavy data cannot keep same-class neighborhoods: its graph
// loses edges, triangles and hubs, and all three complements rise
// toward 1 together.
//
// Options: Metric picks the distance, NetworkEps the radius.
package network
