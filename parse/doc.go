package parse

// Parser and validator for C declarations, type names and function
// prototypes.
//
// Every parse function takes a lex.TokenCursor by value and returns the
// result together with the advanced cursor. A failed attempt leaves the
// caller's cursor untouched, which is all the backtracking the grammar needs.
//
//
// Glossary:
//
// Specifier
// ---------
//
// A keyword modifying a base type.
//
// e.g.
// const unsigned long int volatile x;
// ^^^^^^^^^^^^^^^^^^^     ^^^^^^^^
//
// Long specifiers accumulate, "long long" is one specifier and a third
// "long" is an error. Specifiers may appear on both sides of the type
// keyword.
//
// Implicit int
// ------------
//
// Integer-only specifiers with no type keyword mean int.
//
// e.g.
// unsigned long x;   is   unsigned long int x;
//
// Calling convention
// ------------------
//
// An MSVC keyword choosing the ABI of a function.
//
// e.g.
// int __stdcall f(int);
// void (__cdecl *cb)(void);
//
// At most one may appear in a declaration.
//
// Declarator
// ----------
//
// The part of a declaration after the specifiers: pointer layers, the
// declared name and array suffixes.
//
// e.g.
// char *const *argv[4];
//      ^^^^^^^^^^^^^^^
//
// Pointer layers nest left to right, the first '*' points at the base type.
//
// Abstract Declarator
// -------------------
//
// A declarator missing an identifier, as in "int *" used as a parameter.
//
// Variadic marker
// ---------------
//
// The "..." ending a parameter list. It must be the last parameter.
//
// Mask
// ----
//
// The set of productions allowed in the current context. Parameters may
// not use struct specifiers, return types may not declare names.
