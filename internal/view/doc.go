// Package view holds the reference page's view state and renders it.
//
// State is the per-request view of the page: the search text, the set of
// expanded endpoint ids and the active category. It round-trips through URL
// query values so every link on the rendered page can describe the state it
// leads to.
//
// Active-category tracking is modelled against a Viewport collaborator that
// reports scroll offset and section geometry. The browser runs the same rule
// in the script embedded in the page template.
package view
