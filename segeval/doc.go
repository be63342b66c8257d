// Package segeval scores a segmentation against a ground-truth labeling.
//
// Scores:
//
//   - Accuracy: fraction of positions where both labelings agree (label ids
//     must match; no relabeling).
//   - AdjustedRandIndex: pair-counting agreement corrected for chance; 1 for
//     identical partitions up to relabeling, ≈0 for independent ones.
//   - MutualInformation: I(X;Y) in nats from the contingency table.
//   - VariationOfInformation: H(X) + H(Y) − 2·I(X;Y); a metric on partitions,
//     0 iff the partitions coincide up to relabeling.
//
// Seed masking:
//
//   - Seeded nodes are fixed by construction, so scores usually exclude them.
//     Evaluate drops every position where seeds[i] != 0 before scoring.
//
// Entropies use gonum's stat.Entropy (natural logarithm).
package segeval
