package common

// Production rule names of the OWL 2 functional-style grammar. They are used
// as Node names.
const (
	NameOntologyDocument         = "OntologyDocument"
	NamePrefixDeclaration        = "PrefixDeclaration"
	NamePrefixName               = "PrefixName"
	NameOntology                 = "Ontology"
	NameOntologyIRI              = "OntologyIRI"
	NameVersionIRI               = "VersionIRI"
	NameDirectlyImportsDocuments = "DirectlyImportsDocuments"
	NameOntologyAnnotations      = "OntologyAnnotations"
	NameAxioms                   = "Axioms"
	NameImport                   = "Import"

	NameIRI            = "IRI"
	NameFullIRI        = "FullIRI"
	NameAbbreviatedIRI = "AbbreviatedIRI"

	NameAnnotations       = "Annotations"
	NameAnnotation        = "Annotation"
	NameAnnotationSubject = "AnnotationSubject"
	NameAnnotationValue   = "AnnotationValue"

	NameClass               = "Class"
	NameDatatype            = "Datatype"
	NameObjectProperty      = "ObjectProperty"
	NameDataProperty        = "DataProperty"
	NameAnnotationProperty  = "AnnotationProperty"
	NameNamedIndividual     = "NamedIndividual"
	NameAnonymousIndividual = "AnonymousIndividual"
	NameIndividual          = "Individual"
	NameEntity              = "Entity"

	NameLiteral                   = "Literal"
	NameTypedLiteral              = "TypedLiteral"
	NameStringLiteralNoLanguage   = "StringLiteralNoLanguage"
	NameStringLiteralWithLanguage = "StringLiteralWithLanguage"
	NameQuotedString              = "QuotedString"
	NameLanguageTag               = "LanguageTag"
	NameNonNegativeInteger        = "NonNegativeInteger"

	NameObjectPropertyExpression    = "ObjectPropertyExpression"
	NameInverseObjectProperty       = "InverseObjectProperty"
	NameDataPropertyExpression      = "DataPropertyExpression"
	NameSubObjectPropertyExpression = "SubObjectPropertyExpression"
	NamePropertyExpressionChain     = "PropertyExpressionChain"
	NameObjectPropertyExpressions   = "ObjectPropertyExpressions"
	NameDataPropertyExpressions     = "DataPropertyExpressions"

	NameClassExpression        = "ClassExpression"
	NameObjectIntersectionOf   = "ObjectIntersectionOf"
	NameObjectUnionOf          = "ObjectUnionOf"
	NameObjectComplementOf     = "ObjectComplementOf"
	NameObjectOneOf            = "ObjectOneOf"
	NameObjectSomeValuesFrom   = "ObjectSomeValuesFrom"
	NameObjectAllValuesFrom    = "ObjectAllValuesFrom"
	NameObjectHasValue         = "ObjectHasValue"
	NameObjectHasSelf          = "ObjectHasSelf"
	NameObjectMinCardinality   = "ObjectMinCardinality"
	NameObjectMaxCardinality   = "ObjectMaxCardinality"
	NameObjectExactCardinality = "ObjectExactCardinality"
	NameDataSomeValuesFrom     = "DataSomeValuesFrom"
	NameDataAllValuesFrom      = "DataAllValuesFrom"
	NameDataHasValue           = "DataHasValue"
	NameDataMinCardinality     = "DataMinCardinality"
	NameDataMaxCardinality     = "DataMaxCardinality"
	NameDataExactCardinality   = "DataExactCardinality"

	NameDataRange           = "DataRange"
	NameDataIntersectionOf  = "DataIntersectionOf"
	NameDataUnionOf         = "DataUnionOf"
	NameDataComplementOf    = "DataComplementOf"
	NameDataOneOf           = "DataOneOf"
	NameDatatypeRestriction = "DatatypeRestriction"
	NameFacetRestriction    = "FacetRestriction"
	NameConstrainingFacet   = "ConstrainingFacet"

	NameAxiom                           = "Axiom"
	NameDeclaration                     = "Declaration"
	NameSubClassOf                      = "SubClassOf"
	NameEquivalentClasses               = "EquivalentClasses"
	NameDisjointClasses                 = "DisjointClasses"
	NameDisjointUnion                   = "DisjointUnion"
	NameSubObjectPropertyOf             = "SubObjectPropertyOf"
	NameEquivalentObjectProperties      = "EquivalentObjectProperties"
	NameDisjointObjectProperties        = "DisjointObjectProperties"
	NameInverseObjectProperties         = "InverseObjectProperties"
	NameObjectPropertyDomain            = "ObjectPropertyDomain"
	NameObjectPropertyRange             = "ObjectPropertyRange"
	NameFunctionalObjectProperty        = "FunctionalObjectProperty"
	NameInverseFunctionalObjectProperty = "InverseFunctionalObjectProperty"
	NameReflexiveObjectProperty         = "ReflexiveObjectProperty"
	NameIrreflexiveObjectProperty       = "IrreflexiveObjectProperty"
	NameSymmetricObjectProperty         = "SymmetricObjectProperty"
	NameAsymmetricObjectProperty        = "AsymmetricObjectProperty"
	NameTransitiveObjectProperty        = "TransitiveObjectProperty"
	NameSubDataPropertyOf               = "SubDataPropertyOf"
	NameEquivalentDataProperties        = "EquivalentDataProperties"
	NameDisjointDataProperties          = "DisjointDataProperties"
	NameDataPropertyDomain              = "DataPropertyDomain"
	NameDataPropertyRange               = "DataPropertyRange"
	NameFunctionalDataProperty          = "FunctionalDataProperty"
	NameDatatypeDefinition              = "DatatypeDefinition"
	NameHasKey                          = "HasKey"
	NameSameIndividual                  = "SameIndividual"
	NameDifferentIndividuals            = "DifferentIndividuals"
	NameClassAssertion                  = "ClassAssertion"
	NameObjectPropertyAssertion         = "ObjectPropertyAssertion"
	NameNegativeObjectPropertyAssertion = "NegativeObjectPropertyAssertion"
	NameDataPropertyAssertion           = "DataPropertyAssertion"
	NameNegativeDataPropertyAssertion   = "NegativeDataPropertyAssertion"
	NameAnnotationAssertion             = "AnnotationAssertion"
	NameSubAnnotationPropertyOf         = "SubAnnotationPropertyOf"
	NameAnnotationPropertyDomain        = "AnnotationPropertyDomain"
	NameAnnotationPropertyRange         = "AnnotationPropertyRange"
)
