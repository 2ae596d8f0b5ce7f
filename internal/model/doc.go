// Package model contains the shared model for oecdrt.
//
// We keep here the types passed between the stages of the analysis
// and the logger interface every stage uses.
package model
