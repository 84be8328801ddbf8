// Package errors contains the error definitions used in the fluent library.
// Each error is uniquely identified and classified with the class.Class
// classification defined in the 'errors/class' subpackage.
package errors
