// Package campaign implements the compound campaign operations.
//
// listmonk creates every campaign as a draft and only changes status through
// a dedicated transition endpoint. Create and Update therefore issue a second
// call when the caller asks for a status. Transition legality is left to
// listmonk, and nothing is rolled back when the second call fails.
package campaign
