package coerce

// Shortcuts using the default options of each coercer.

// TryString is String{}.Try.
func TryString(v any) (string, bool) { return String{}.Try(v) }

// StringOrNull is String{}.OrNull.
func StringOrNull(v any) (*string, bool) { return String{}.OrNull(v) }

// StringOrFail is String{}.OrFail.
func StringOrFail(v any) (string, error) { return String{}.OrFail(v) }

// TryInt is Int{}.Try.
func TryInt(v any) (int64, bool) { return Int{}.Try(v) }

// IntOrNull is Int{}.OrNull.
func IntOrNull(v any) (*int64, bool) { return Int{}.OrNull(v) }

// IntOrFail is Int{}.OrFail.
func IntOrFail(v any) (int64, error) { return Int{}.OrFail(v) }

// TryFloat is Float{}.Try.
func TryFloat(v any) (float64, bool) { return Float{}.Try(v) }

// FloatOrNull is Float{}.OrNull.
func FloatOrNull(v any) (*float64, bool) { return Float{}.OrNull(v) }

// FloatOrFail is Float{}.OrFail.
func FloatOrFail(v any) (float64, error) { return Float{}.OrFail(v) }

// TryBool is Bool{}.Try.
func TryBool(v any) (bool, bool) { return Bool{}.Try(v) }

// BoolOrNull is Bool{}.OrNull.
func BoolOrNull(v any) (*bool, bool) { return Bool{}.OrNull(v) }

// BoolOrFail is Bool{}.OrFail.
func BoolOrFail(v any) (bool, error) { return Bool{}.OrFail(v) }

// TryArrayKey is ArrayKey{}.Try.
func TryArrayKey(v any) (Key, bool) { return ArrayKey{}.Try(v) }

// ArrayKeyOrNull is ArrayKey{}.OrNull.
func ArrayKeyOrNull(v any) (*Key, bool) { return ArrayKey{}.OrNull(v) }

// ArrayKeyOrFail is ArrayKey{}.OrFail.
func ArrayKeyOrFail(v any) (Key, error) { return ArrayKey{}.OrFail(v) }
