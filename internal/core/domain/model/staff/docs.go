// Package staff provides the StaffMember aggregate and the Role enumeration
// for the dispatch pool. Availability is a derived display hint (active
// assignment count), never stored state.
package staff
