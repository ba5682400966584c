// Package catalog contains the Service aggregate: the errand categories
// customers can order, with their base service fees.
package catalog
