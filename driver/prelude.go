package driver

// prelude is a short sequence of library definitions evaluated against the
// root environment before any user input. It is
// intentionally small — exercising `def`, the `&`
// variadic sentinel, and `eval`/`join`/`list`/`head`/`tail` — rather than a
// full standard library.
const prelude = `
(def {nil} {})
(def {true} (== 1 1))
(def {false} (== 1 0))
(def {otherwise} true)

(def {fun} (\ {f b} {
  def (head f) (eval (list \ (tail f) b))
}))

(fun {unpack f xs} {
  eval (join (list f) xs)
})

(fun {pack f & xs} {f xs})

(fun {first l} {eval (head l)})
(fun {second l} {eval (head (tail l))})
(fun {third l} {eval (head (tail (tail l)))})

(fun {len-r l acc} {
  if (== l nil)
    {acc}
    {len-r (tail l) (+ acc 1)}
})

(fun {reverse l} {
  if (== l nil)
    {nil}
    {join (reverse (tail l)) (head l)}
})

(fun {flip f a b} {f b a})
(fun {compose f g x} {f (g x)})
`
