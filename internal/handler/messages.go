package handler

const (
	msgRequired      = "Name and Roll Number are required."
	msgAdded         = "Student added successfully."
	msgUpdated       = "Student updated."
	msgDeleted       = "Student deleted."
	msgInvalidIndex  = "Invalid index."
	msgNotFound      = "Student not found."
	msgNoFile        = "No file uploaded."
	msgBadUpload     = "Could not read the uploaded file."
	msgInvalidCSV    = "The uploaded file is not a valid CSV file."
	msgImportedFmt   = "Imported %d students (%d skipped)."
	msgInternalError = "Something went wrong, please try again."
)
