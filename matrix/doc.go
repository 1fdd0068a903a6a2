// Package matrix builds sparse matrix views of a core.Graph and writes them
// in the NumPy/SciPy interchange format.
//
// What:
//
//   - CSR: compressed sparse row matrix (float64 values, sorted columns).
//   - Laplacian: L = D − W where W holds edge distances and D the weighted
//     degrees; symmetric, rows sum to zero.
//   - WriteNPZ: a zip archive of .npy members in the layout read by
//     scipy.sparse.load_npz (format, shape, data, indices, indptr).
//
// Why:
//
//	The spectral artifact of every graph is consumed by Python tooling, so
//	the on-disk layout follows scipy.sparse.save_npz (compressed variant).
//
// Complexity:
//
//	Laplacian: O(V + E log d_max) time, O(V + E) space.
//	WriteNPZ:  O(nnz) plus deflate cost.
package matrix
