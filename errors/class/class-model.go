package class

var (
	// MjrModel is the major error classification for the model mapping issues.
	MjrModel Major

	// MnrModelValue is the minor error classification for the model values.
	MnrModelValue Minor

	// ModelValueNil is the error classification for nil model values.
	ModelValueNil Class
	// ModelValueInvalid is the error classification for invalid model values -
	// non-struct types or non-pointer model instances.
	ModelValueInvalid Class

	// MnrModelMapping is the minor error classification for the model mapping.
	MnrModelMapping Minor

	// ModelNotMapped is the error classification for unmapped models.
	ModelNotMapped Class
	// ModelAlreadyRegistered is the error classification for models that were
	// already registered within given model map.
	ModelAlreadyRegistered Class
	// ModelMappingNoFields is the error classification for model types without
	// any mappable fields or without a primary field.
	ModelMappingNoFields Class

	// MnrModelField is the minor error classification for the model fields.
	MnrModelField Minor

	// ModelFieldInvalid is the error classification for invalid model field
	// definitions - i.e. an unknown relation kind in the field's tag.
	ModelFieldInvalid Class

	// MnrModelRelation is the minor error classification for the model relations.
	MnrModelRelation Minor

	// ModelRelationInvalidValue is the error classification for relation values
	// not assignable to the relation field.
	ModelRelationInvalidValue Class
	// ModelRelationStore is the error classification for model instances
	// without the embedded relations store.
	ModelRelationStore Class
)

func registerModelClasses() {
	MjrModel = MustRegisterMajor("Model", "model definition and mapping issues")

	MnrModelValue = MjrModel.MustRegisterMinor("Value", "model value issues")

	ModelValueNil = MnrModelValue.MustRegisterIndex("Nil", "provided nil model value").Class()
	ModelValueInvalid = MnrModelValue.MustRegisterIndex("Invalid", "provided invalid model value").Class()

	MnrModelMapping = MjrModel.MustRegisterMinor("Mapping", "model mapping issues")

	ModelNotMapped = MnrModelMapping.MustRegisterIndex("Not Mapped", "model is not mapped").Class()
	ModelAlreadyRegistered = MnrModelMapping.MustRegisterIndex("Already Registered", "model already registered").Class()
	ModelMappingNoFields = MnrModelMapping.MustRegisterIndex("No Fields", "model has no fields or no primary field").Class()

	MnrModelField = MjrModel.MustRegisterMinor("Field", "model field issues")

	ModelFieldInvalid = MnrModelField.MustRegisterIndex("Invalid", "invalid model field definition").Class()

	MnrModelRelation = MjrModel.MustRegisterMinor("Relation", "model relation issues")

	ModelRelationInvalidValue = MnrModelRelation.MustRegisterIndex("Invalid Value", "invalid relation value").Class()
	ModelRelationStore = MnrModelRelation.MustRegisterIndex("Store", "model has no relations store").Class()
}
