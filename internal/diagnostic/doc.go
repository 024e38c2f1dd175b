// Package diagnostic provides structured errors and warnings for the
// build-time steps: registry validation and planning against native types.
//
// A diagnostic carries a stable code, the family it relates to and a field
// path such as "BoneData.transform". Nothing is generated while any error
// diagnostic is present.
package diagnostic
